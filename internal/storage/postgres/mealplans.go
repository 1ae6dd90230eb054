package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

// SaveMealPlan сохраняет текущий план питания пользователя,
// перезаписывая предыдущий. План хранится целиком в jsonb-колонке.
func (s *Storage) SaveMealPlan(ctx context.Context, userUID string, plan models.MealPlan) error {
	const op = "storage.postgres.SaveMealPlan"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	raw, err := json.Marshal(plan.WeeklyPlan)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO meal_plans (user_uid, plan, updated_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (user_uid) DO UPDATE
			  SET plan = EXCLUDED.plan,
			      updated_at = EXCLUDED.updated_at`
	if _, err = s.DB.ExecContext(ctx, query, userUID, raw, time.Now().UTC()); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetMealPlan возвращает текущий план питания пользователя.
// Если плана нет, возвращает storage.ErrNotFound.
func (s *Storage) GetMealPlan(ctx context.Context, userUID string) (*models.MealPlan, error) {
	const op = "storage.postgres.GetMealPlan"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT plan, updated_at
			  FROM meal_plans
			  WHERE user_uid = $1`
	row := s.DB.QueryRowContext(ctx, query, userUID)

	var raw []byte
	var plan models.MealPlan
	if err := row.Scan(&raw, &plan.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal(raw, &plan.WeeklyPlan); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &plan, nil
}
