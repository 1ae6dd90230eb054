package firestore

import (
	"context"
	"fmt"
	"time"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

type mealPlanDocData struct {
	Plan      map[string]models.DayPlan `firestore:"plan"`
	UpdatedAt time.Time                 `firestore:"updatedAt"`
}

// SaveMealPlan сохраняет текущий план питания пользователя,
// перезаписывая предыдущий документ mealPlans/current.
func (s *Storage) SaveMealPlan(ctx context.Context, userUID string, plan models.MealPlan) error {
	const op = "storage.firestore.SaveMealPlan"

	doc := mealPlanDocData{
		Plan:      plan.WeeklyPlan,
		UpdatedAt: time.Now().UTC(),
	}
	ref := s.userRef(userUID).Collection(mealPlansCollection).Doc(mealPlanDoc)
	if _, err := ref.Set(ctx, doc); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetMealPlan возвращает текущий план питания пользователя.
// Если плана нет, возвращает storage.ErrNotFound.
func (s *Storage) GetMealPlan(ctx context.Context, userUID string) (*models.MealPlan, error) {
	const op = "storage.firestore.GetMealPlan"

	snap, err := s.userRef(userUID).Collection(mealPlansCollection).Doc(mealPlanDoc).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc mealPlanDocData
	if err = snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.MealPlan{
		WeeklyPlan: doc.Plan,
		UpdatedAt:  doc.UpdatedAt,
	}, nil
}
