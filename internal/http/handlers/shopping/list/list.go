// Package list реализует HTTP-обработчик чтения списка покупок пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vitalbites-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vitalbites-backend/internal/http/response"
	"github.com/magabrotheeeer/vitalbites-backend/internal/lib/sl"
	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
)

// Service описывает интерфейс чтения списка покупок.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.ShoppingItem, error)
}

// Handler управляет HTTP-запросами на чтение списка покупок.
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
// @Summary Список покупок
// @Description Возвращает все позиции списка покупок текущего пользователя.
// @Tags ShoppingList
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Позиции списка покупок"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /shopping-list [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.shopping.list"

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

	items, err := h.service.List(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list shopping items", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list shopping items"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(items))
}
