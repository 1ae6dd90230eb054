package services

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

var (
	// ErrPreferencesMissing возвращается, когда генерация запрошена без
	// предпочтений в теле запроса, а сохранённого профиля у пользователя нет.
	ErrPreferencesMissing = errors.New("preferences are not set")

	// ErrGenerationTimeout возвращается, когда внешний генеративный сервис
	// не успел ответить за отведённое время.
	ErrGenerationTimeout = errors.New("meal plan generation timed out")
)

// MealPlanRepository описывает хранилище планов питания и предпочтений.
// Предпочтения нужны сервису, чтобы подставить сохранённый профиль,
// когда клиент не прислал свой.
type MealPlanRepository interface {
	SaveMealPlan(ctx context.Context, userUID string, plan models.MealPlan) error
	GetMealPlan(ctx context.Context, userUID string) (*models.MealPlan, error)
	GetPreferences(ctx context.Context, userUID string) (*models.Preferences, error)
}

// PlanGenerator описывает внешний сервис генерации недельного плана.
type PlanGenerator interface {
	GenerateMealPlan(ctx context.Context, prefs models.Preferences) (*models.MealPlan, error)
}

// MealPlanService реализует генерацию и чтение текущего плана питания.
// У пользователя всегда не более одного плана: новая успешная генерация
// полностью заменяет предыдущую, неудачная не трогает сохранённый план.
type MealPlanService struct {
	repo MealPlanRepository
	gen  PlanGenerator
	log  *slog.Logger
}

func NewMealPlanService(repo MealPlanRepository, gen PlanGenerator, log *slog.Logger) *MealPlanService {
	return &MealPlanService{
		repo: repo,
		gen:  gen,
		log:  log,
	}
}

// Generate строит новый недельный план по предпочтениям из запроса
// или по сохранённому профилю и сохраняет его как текущий.
func (s *MealPlanService) Generate(ctx context.Context, userUID string, override *models.Preferences) (*models.MealPlan, error) {
	prefs := override
	if prefs == nil {
		stored, err := s.repo.GetPreferences(ctx, userUID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, ErrPreferencesMissing
			}
			return nil, err
		}
		prefs = stored
	}

	plan, err := s.gen.GenerateMealPlan(ctx, *prefs)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrGenerationTimeout
		}
		return nil, err
	}
	plan.UpdatedAt = time.Now().UTC()

	if err := s.repo.SaveMealPlan(ctx, userUID, *plan); err != nil {
		return nil, err
	}
	s.log.Info("generated new meal plan", slog.String("user_uid", userUID))

	return plan, nil
}

// Current возвращает сохранённый план питания пользователя.
func (s *MealPlanService) Current(ctx context.Context, userUID string) (*models.MealPlan, error) {
	return s.repo.GetMealPlan(ctx, userUID)
}

// isTimeout отличает истечение времени у внешнего сервиса от прочих
// сбоев: клиент должен увидеть 504, а не 502.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
