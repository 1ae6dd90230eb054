// Package update реализует HTTP-обработчик частичного обновления позиции
// списка покупок: присланные поля заменяют одноимённые, остальные не трогаются.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vitalbites-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vitalbites-backend/internal/http/response"
	"github.com/magabrotheeeer/vitalbites-backend/internal/lib/sl"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

// Service описывает интерфейс обновления позиции списка покупок.
type Service interface {
	Update(ctx context.Context, userUID, itemID string, fields map[string]any) error
}

// Handler управляет HTTP-запросами на обновление позиций.
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
// @Summary Обновить позицию списка покупок
// @Description Изменяет присланные поля позиции, не трогая остальные.
// @Tags ShoppingList
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID позиции"
// @Param request body map[string]any true "Изменяемые поля"
// @Success 200 {object} map[string]any "Позиция обновлена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Позиция не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при обновлении позиции"
// @Router /shopping-list/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.shopping.update"

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

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if len(fields) == 0 {
		log.Error("empty update")
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("update must not be empty"))
		return
	}
	log.Info("request body decoded", slog.String("item_id", itemID))

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.Update(r.Context(), userUID, itemID, fields); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("shopping item not found", slog.String("item_id", itemID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("shopping item not found"))
			return
		}
		log.Error("failed to update shopping item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update shopping item"))
		return
	}

	log.Info("shopping item updated", slog.String("item_id", itemID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": itemID,
	}))
}
