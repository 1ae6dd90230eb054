package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

// UpsertPreferences сохраняет предпочтения пользователя, полностью
// перезаписывая существующую запись. Запись всегда одна на пользователя.
func (s *Storage) UpsertPreferences(ctx context.Context, userUID string, prefs models.Preferences) error {
	const op = "storage.postgres.UpsertPreferences"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	targets, err := json.Marshal(prefs.Targets)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	healthFocus, err := json.Marshal(prefs.HealthFocus)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	restrictions, err := json.Marshal(prefs.DietaryRestrictions)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	timeAvailability, err := json.Marshal(prefs.TimeAvailability)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	culturalBackground, err := json.Marshal(prefs.CulturalBackground)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO preferences (user_uid, targets, health_focus, dietary_restrictions,
			      time_availability, about, favorite_foods, sample_meal_plan,
			      social_media_favorites, familiarity_level, cultural_background)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  ON CONFLICT (user_uid) DO UPDATE
			  SET targets = EXCLUDED.targets,
			      health_focus = EXCLUDED.health_focus,
			      dietary_restrictions = EXCLUDED.dietary_restrictions,
			      time_availability = EXCLUDED.time_availability,
			      about = EXCLUDED.about,
			      favorite_foods = EXCLUDED.favorite_foods,
			      sample_meal_plan = EXCLUDED.sample_meal_plan,
			      social_media_favorites = EXCLUDED.social_media_favorites,
			      familiarity_level = EXCLUDED.familiarity_level,
			      cultural_background = EXCLUDED.cultural_background`
	if _, err = s.DB.ExecContext(ctx, query,
		userUID, targets, healthFocus, restrictions, timeAvailability,
		prefs.About, prefs.FavoriteFoods, prefs.SampleMealPlan,
		prefs.SocialMediaFavorites, prefs.FamiliarityLevel, culturalBackground); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetPreferences возвращает предпочтения пользователя.
// Если записи нет, возвращает storage.ErrNotFound.
func (s *Storage) GetPreferences(ctx context.Context, userUID string) (*models.Preferences, error) {
	const op = "storage.postgres.GetPreferences"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT targets, health_focus, dietary_restrictions, time_availability,
			      about, favorite_foods, sample_meal_plan, social_media_favorites,
			      familiarity_level, cultural_background
			  FROM preferences
			  WHERE user_uid = $1`
	row := s.DB.QueryRowContext(ctx, query, userUID)

	var prefs models.Preferences
	var targets, healthFocus, restrictions, timeAvailability, culturalBackground []byte
	if err := row.Scan(&targets, &healthFocus, &restrictions, &timeAvailability,
		&prefs.About, &prefs.FavoriteFoods, &prefs.SampleMealPlan,
		&prefs.SocialMediaFavorites, &prefs.FamiliarityLevel, &culturalBackground); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(targets, &prefs.Targets); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(healthFocus, &prefs.HealthFocus); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(restrictions, &prefs.DietaryRestrictions); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(timeAvailability, &prefs.TimeAvailability); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(culturalBackground, &prefs.CulturalBackground); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &prefs, nil
}
