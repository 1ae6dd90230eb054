package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
)

// PreferencesRepository описывает хранилище пищевых предпочтений.
type PreferencesRepository interface {
	UpsertPreferences(ctx context.Context, userUID string, prefs models.Preferences) error
	GetPreferences(ctx context.Context, userUID string) (*models.Preferences, error)
}

// PreferencesService управляет профилем предпочтений пользователя.
// Профиль сохраняется целиком: частичных обновлений нет, клиент
// присылает полный документ.
type PreferencesService struct {
	repo PreferencesRepository
	log  *slog.Logger
}

func NewPreferencesService(repo PreferencesRepository, log *slog.Logger) *PreferencesService {
	return &PreferencesService{
		repo: repo,
		log:  log,
	}
}

// Upsert сохраняет полный профиль предпочтений, заменяя предыдущий.
func (s *PreferencesService) Upsert(ctx context.Context, userUID string, prefs models.Preferences) error {
	if err := s.repo.UpsertPreferences(ctx, userUID, prefs); err != nil {
		return err
	}
	s.log.Info("saved user preferences", slog.String("user_uid", userUID))
	return nil
}

// Get возвращает сохранённый профиль предпочтений пользователя.
// Если профиль не сохранялся, репозиторий отдаёт storage.ErrNotFound.
func (s *PreferencesService) Get(ctx context.Context, userUID string) (*models.Preferences, error) {
	return s.repo.GetPreferences(ctx, userUID)
}
