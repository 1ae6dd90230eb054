// Package clear реализует HTTP-обработчик полной очистки списка покупок.
// Очистка пустого списка также возвращает успех.
package clear

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vitalbites-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vitalbites-backend/internal/http/response"
	"github.com/magabrotheeeer/vitalbites-backend/internal/lib/sl"
)

// Service описывает интерфейс очистки списка покупок.
type Service interface {
	Clear(ctx context.Context, userUID string) error
}

// Handler управляет HTTP-запросами на очистку списка покупок.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Очистить список покупок
// @Description Удаляет все позиции списка покупок текущего пользователя.
// @Tags ShoppingList
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список очищен"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при очистке списка"
// @Router /shopping-list [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.shopping.clear"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Clear(r.Context(), userUID); err != nil {
		log.Error("failed to clear shopping list", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not clear shopping list"))
		return
	}

	log.Info("shopping list cleared", slog.String("user_uid", userUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status": "success",
	}))
}
