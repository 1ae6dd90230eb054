// Package add реализует HTTP-обработчик добавления позиции в список покупок.
//
// Позиция — произвольный JSON-объект: схема полей не навязывается,
// документ сохраняется как есть.
package add

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vitalbites-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vitalbites-backend/internal/http/response"
	"github.com/magabrotheeeer/vitalbites-backend/internal/lib/sl"
)

// Service описывает интерфейс добавления позиции списка покупок.
type Service interface {
	Add(ctx context.Context, userUID string, fields map[string]any) (string, error)
}

// Handler управляет HTTP-запросами на добавление позиций.
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
// @Summary Добавить позицию в список покупок
// @Description Сохраняет произвольный JSON-объект как позицию списка покупок. Возвращает ID созданной позиции.
// @Tags ShoppingList
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body map[string]any true "Поля новой позиции"
// @Success 200 {object} map[string]any "Успешное добавление позиции"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при добавлении позиции"
// @Router /shopping-list [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.shopping.add"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	if len(fields) == 0 {
		log.Error("empty shopping item")
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("shopping item must not be empty"))
		return
	}
	log.Info("request body decoded")

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id, err := h.service.Add(r.Context(), userUID, fields)
	if err != nil {
		log.Error("failed to add shopping item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not add shopping item"))
		return
	}

	log.Info("shopping item added", slog.String("item_id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
