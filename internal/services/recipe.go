package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
)

// RecipeRepository описывает хранилище пользовательских рецептов.
type RecipeRepository interface {
	CreateRecipe(ctx context.Context, recipe models.Recipe) (string, error)
	ListRecipes(ctx context.Context, userUID string) ([]*models.Recipe, error)
}

// RecipeService управляет коллекцией рецептов пользователя.
// Рецепты не связаны с планом питания: удаление или перегенерация
// плана коллекцию не меняет.
type RecipeService struct {
	repo RecipeRepository
	log  *slog.Logger
}

func NewRecipeService(repo RecipeRepository, log *slog.Logger) *RecipeService {
	return &RecipeService{
		repo: repo,
		log:  log,
	}
}

// Create добавляет рецепт в коллекцию пользователя и возвращает его идентификатор.
func (s *RecipeService) Create(ctx context.Context, userUID string, req models.DummyRecipe) (string, error) {
	recipe := models.Recipe{
		UserUID:      userUID,
		Name:         req.Name,
		Image:        req.Image,
		PrepTime:     req.PrepTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		Ayurvedic:    req.Ayurvedic,
		Tags:         req.Tags,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Calories:     req.Calories,
		Protein:      req.Protein,
		Carbs:        req.Carbs,
		Fat:          req.Fat,
	}

	id, err := s.repo.CreateRecipe(ctx, recipe)
	if err != nil {
		return "", err
	}
	s.log.Info("created new recipe", slog.String("recipe_id", id), slog.String("user_uid", userUID))

	return id, nil
}

// List возвращает все рецепты пользователя в порядке добавления.
func (s *RecipeService) List(ctx context.Context, userUID string) ([]*models.Recipe, error) {
	return s.repo.ListRecipes(ctx, userUID)
}
