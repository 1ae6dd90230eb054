package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
)

type recipeDoc struct {
	Name         string    `firestore:"name"`
	Image        string    `firestore:"image"`
	PrepTime     string    `firestore:"prepTime"`
	Servings     int       `firestore:"servings"`
	Difficulty   string    `firestore:"difficulty"`
	Ayurvedic    string    `firestore:"ayurvedic"`
	Tags         []string  `firestore:"tags"`
	Ingredients  []string  `firestore:"ingredients"`
	Instructions []string  `firestore:"instructions"`
	Calories     int       `firestore:"calories"`
	Protein      int       `firestore:"protein"`
	Carbs        int       `firestore:"carbs"`
	Fat          int       `firestore:"fat"`
	CreatedAt    time.Time `firestore:"createdAt"`
}

// CreateRecipe добавляет рецепт в подколлекцию recipes пользователя
// и возвращает идентификатор нового документа.
func (s *Storage) CreateRecipe(ctx context.Context, recipe models.Recipe) (string, error) {
	const op = "storage.firestore.CreateRecipe"

	doc := recipeDoc{
		Name:         recipe.Name,
		Image:        recipe.Image,
		PrepTime:     recipe.PrepTime,
		Servings:     recipe.Servings,
		Difficulty:   recipe.Difficulty,
		Ayurvedic:    recipe.Ayurvedic,
		Tags:         recipe.Tags,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		Calories:     recipe.Calories,
		Protein:      recipe.Protein,
		Carbs:        recipe.Carbs,
		Fat:          recipe.Fat,
		CreatedAt:    time.Now().UTC(),
	}
	ref := s.userRef(recipe.UserUID).Collection(recipesCollection).NewDoc()
	if _, err := ref.Create(ctx, doc); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return ref.ID, nil
}

// ListRecipes возвращает все рецепты пользователя в порядке создания.
func (s *Storage) ListRecipes(ctx context.Context, userUID string) ([]*models.Recipe, error) {
	const op = "storage.firestore.ListRecipes"

	iter := s.userRef(userUID).Collection(recipesCollection).
		OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var result []*models.Recipe
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		var doc recipeDoc
		if err = snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &models.Recipe{
			ID:           snap.Ref.ID,
			UserUID:      userUID,
			Name:         doc.Name,
			Image:        doc.Image,
			PrepTime:     doc.PrepTime,
			Servings:     doc.Servings,
			Difficulty:   doc.Difficulty,
			Ayurvedic:    doc.Ayurvedic,
			Tags:         doc.Tags,
			Ingredients:  doc.Ingredients,
			Instructions: doc.Instructions,
			Calories:     doc.Calories,
			Protein:      doc.Protein,
			Carbs:        doc.Carbs,
			Fat:          doc.Fat,
			CreatedAt:    doc.CreatedAt,
		})
	}
	return result, nil
}
