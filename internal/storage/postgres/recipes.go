package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
)

// CreateRecipe вставляет новый рецепт и возвращает его идентификатор.
func (s *Storage) CreateRecipe(ctx context.Context, recipe models.Recipe) (string, error) {
	const op = "storage.postgres.CreateRecipe"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tags, err := json.Marshal(recipe.Tags)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	instructions, err := json.Marshal(recipe.Instructions)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	newID := uuid.New().String()
	query := `INSERT INTO recipes (id, user_uid, name, image, prep_time, servings, difficulty,
			      ayurvedic, tags, ingredients, instructions, calories, protein, carbs, fat, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	if _, err = s.DB.ExecContext(ctx, query,
		newID, recipe.UserUID, recipe.Name, recipe.Image, recipe.PrepTime, recipe.Servings,
		recipe.Difficulty, recipe.Ayurvedic, tags, ingredients, instructions,
		recipe.Calories, recipe.Protein, recipe.Carbs, recipe.Fat, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListRecipes возвращает все рецепты пользователя в порядке создания.
func (s *Storage) ListRecipes(ctx context.Context, userUID string) ([]*models.Recipe, error) {
	const op = "storage.postgres.ListRecipes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, name, image, prep_time, servings, difficulty,
			      ayurvedic, tags, ingredients, instructions, calories, protein, carbs, fat, created_at
			  FROM recipes
			  WHERE user_uid = $1
			  ORDER BY created_at`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Recipe
	for rows.Next() {
		var r models.Recipe
		var tags, ingredients, instructions []byte
		if err = rows.Scan(&r.ID, &r.UserUID, &r.Name, &r.Image, &r.PrepTime, &r.Servings,
			&r.Difficulty, &r.Ayurvedic, &tags, &ingredients, &instructions,
			&r.Calories, &r.Protein, &r.Carbs, &r.Fat, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal(tags, &r.Tags); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal(ingredients, &r.Ingredients); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal(instructions, &r.Instructions); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
