// Package me реализует HTTP-обработчик чтения профиля текущего пользователя.
package me

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

// Service описывает интерфейс чтения профиля пользователя.
type Service interface {
	Profile(ctx context.Context, userUID string) (*models.User, error)
}

// Handler управляет HTTP-запросами на чтение профиля.
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
// @Summary Профиль текущего пользователя
// @Description Возвращает учетную запись пользователя, которому принадлежит токен.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} map[string]any "Профиль пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Учетная запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

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

	user, err := h.service.Profile(r.Context(), userUID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("user not found", slog.String("user_uid", userUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to read profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read profile"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":         user.UID,
		"email":      user.Email,
		"name":       user.Name,
		"created_at": user.CreatedAt,
	}))
}
