// Package generate реализует HTTP-обработчик генерации нового недельного
// плана питания.
//
// Тело запроса опционально: если клиент прислал профиль предпочтений,
// генерация идёт по нему, иначе — по сохранённому профилю пользователя.
// Неудачная генерация не трогает сохранённый план.
package generate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/vitalbites-backend/internal/generator"
	"github.com/magabrotheeeer/vitalbites-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vitalbites-backend/internal/http/response"
	"github.com/magabrotheeeer/vitalbites-backend/internal/lib/sl"
	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/services"
)

// Service описывает интерфейс бизнес-логики генерации плана.
type Service interface {
	Generate(ctx context.Context, userUID string, override *models.Preferences) (*models.MealPlan, error)
}

// Handler управляет HTTP-запросами на генерацию плана питания.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сгенерировать план питания
// @Description Генерирует новый недельный план по присланным или сохранённым предпочтениям и сохраняет его как текущий.
// @Tags MealPlan
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.Preferences false "Профиль предпочтений (опционально)"
// @Success 200 {object} map[string]any "Сгенерированный план"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Предпочтения не заданы"
// @Failure 502 {object} response.ErrorResponse "Генератор вернул некорректный план"
// @Failure 504 {object} response.ErrorResponse "Генератор не ответил вовремя"
// @Router /meal-plan/generate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.mealplan.generate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	// json null декодируется в nil-указатель без ошибки,
	// поэтому тела "", "null" и отсутствующее означают одно и то же
	var override *models.Preferences
	switch err := json.NewDecoder(r.Body).Decode(&override); {
	case err == nil && override != nil:
		if err := h.validate.Var(override.FamiliarityLevel, "gte=0,lte=100"); err != nil {
			log.Error("validation failed", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("familiarityLevel must be between 0 and 100"))
			return
		}
		log.Info("using preferences from request body")
	case err == nil, errors.Is(err, io.EOF):
		// пустое тело: генерация по сохранённому профилю
		log.Info("using stored preferences")
	default:
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	plan, err := h.service.Generate(r.Context(), userUID, override)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPreferencesMissing):
			log.Warn("preferences not set", slog.String("user_uid", userUID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("preferences are not set"))
		case errors.Is(err, services.ErrGenerationTimeout):
			log.Error("generation timed out", slog.String("user_uid", userUID))
			w.WriteHeader(http.StatusGatewayTimeout)
			render.JSON(w, r, response.Error("meal plan generation timed out"))
		case errors.Is(err, generator.ErrMalformedPlan), errors.Is(err, generator.ErrIncompletePlan):
			log.Error("generator returned unusable plan", sl.Err(err))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, response.Error("generator returned an unusable plan"))
		default:
			log.Error("failed to generate meal plan", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to generate meal plan"))
		}
		return
	}

	log.Info("meal plan generated", slog.String("user_uid", userUID))
	render.JSON(w, r, response.StatusOKWithData(plan))
}
