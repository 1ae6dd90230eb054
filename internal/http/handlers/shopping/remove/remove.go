// Package remove реализует HTTP-обработчик удаления позиции списка покупок.
// Удаление уже отсутствующей позиции не считается ошибкой.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vitalbites-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vitalbites-backend/internal/http/response"
	"github.com/magabrotheeeer/vitalbites-backend/internal/lib/sl"
)

// Service описывает интерфейс удаления позиции списка покупок.
type Service interface {
	Remove(ctx context.Context, userUID, itemID string) error
}

// Handler управляет HTTP-запросами на удаление позиций.
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
// @Summary Удалить позицию списка покупок
// @Description Удаляет позицию по ID. Повторное удаление той же позиции также возвращает успех.
// @Tags ShoppingList
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID позиции"
// @Success 200 {object} map[string]any "Позиция удалена"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении позиции"
// @Router /shopping-list/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.shopping.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	itemID := chi.URLParam(r, "id")
	if itemID == "" {
		log.Error("missing item id in path")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing item id"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Remove(r.Context(), userUID, itemID); err != nil {
		log.Error("failed to remove shopping item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove shopping item"))
		return
	}

	log.Info("shopping item removed", slog.String("item_id", itemID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status": "success",
	}))
}
