// Package get реализует HTTP-обработчик чтения сохранённого профиля
// пищевых предпочтений пользователя.
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

// Service описывает интерфейс чтения предпочтений.
type Service interface {
	Get(ctx context.Context, userUID string) (*models.Preferences, error)
}

// Handler управляет HTTP-запросами на чтение предпочтений.
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
// @Summary Получить предпочтения
// @Description Возвращает сохранённый профиль пищевых предпочтений текущего пользователя.
// @Tags Preferences
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Профиль предпочтений"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Предпочтения еще не сохранялись"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /preferences [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.preferences.get"

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

	prefs, err := h.service.Get(r.Context(), userUID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("preferences not set", slog.String("user_uid", userUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("preferences are not set"))
			return
		}
		log.Error("failed to read preferences", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read preferences"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(prefs))
}
