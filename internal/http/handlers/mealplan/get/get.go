// Package get реализует HTTP-обработчик чтения текущего плана питания.
package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vitalbites-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vitalbites-backend/internal/http/response"
	"github.com/magabrotheeeer/vitalbites-backend/internal/lib/sl"
	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

// Service описывает интерфейс чтения текущего плана.
type Service interface {
	Current(ctx context.Context, userUID string) (*models.MealPlan, error)
}

// Handler управляет HTTP-запросами на чтение плана питания.
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
// @Summary Получить текущий план питания
// @Description Возвращает последний успешно сгенерированный недельный план пользователя.
// @Tags MealPlan
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Текущий план"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "План еще не генерировался"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /meal-plan [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.mealplan.get"

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

	plan, err := h.service.Current(r.Context(), userUID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("meal plan not found", slog.String("user_uid", userUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("meal plan is not generated yet"))
			return
		}
		log.Error("failed to read meal plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read meal plan"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(plan))
}
