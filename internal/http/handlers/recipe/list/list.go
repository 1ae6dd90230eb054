// Package list реализует HTTP-обработчик чтения коллекции рецептов пользователя.
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

// Service описывает интерфейс чтения коллекции рецептов.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.Recipe, error)
}

// Handler управляет HTTP-запросами на чтение рецептов.
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
// @Summary Список рецептов
// @Description Возвращает все рецепты текущего пользователя в порядке добавления.
// @Tags Recipes
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Коллекция рецептов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.list"

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

	recipes, err := h.service.List(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list recipes", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list recipes"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(recipes))
}
