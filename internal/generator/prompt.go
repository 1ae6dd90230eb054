// Package generator превращает предпочтения пользователя в запрос к внешней
// генеративной модели и разбирает её ответ в структуру недельного плана.
//
// Построение промпта отделено от сетевого вызова и детерминировано:
// одинаковые предпочтения всегда дают одинаковую строку, поэтому промпт
// тестируется без обращения к внешнему сервису.
package generator

import (
	"fmt"
	"strings"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
)

// BuildPrompt строит текст запроса к модели на основе предпочтений.
// Дни недели обходятся в фиксированном порядке models.Weekdays,
// чтобы результат не зависел от порядка обхода map.
func BuildPrompt(prefs models.Preferences) string {
	var timeLines []string
	for _, day := range models.Weekdays {
		times, ok := prefs.TimeAvailability[day]
		if !ok {
			continue
		}
		timeLines = append(timeLines, fmt.Sprintf(
			"%s:\n    - Breakfast: %s minutes\n    - Lunch: %s minutes\n    - Dinner: %s minutes",
			day, times["breakfast"], times["lunch"], times["dinner"]))
	}
	timeAvailability := strings.Join(timeLines, "\n")

	return fmt.Sprintf(`
Generate a personalized weekly meal plan based on the following preferences:

Daily Targets:
- Calories: %d
- Protein: %dg

Health Focus:
- Primary: %s
- Secondary: %s

Dietary Restrictions: %s

Time Availability:
%s

Cultural Background: %s
Familiarity Level: %d%% (higher means more adventurous)

Additional Information:
%s

Favorite Foods: %s

Please generate a weekly meal plan in the following JSON format:
{
  "weeklyPlan": {
    "Monday": {
      "breakfast": {
        "recipe": "Recipe Name",
        "prepTime": "XX mins",
        "calories": XXX,
        "protein": XX,
        "image": "unsplash_url",
        "ayurvedic": "dosha_balance",
        "ingredients": ["ingredient1", "ingredient2"],
        "instructions": ["step1", "step2"]
      },
      "lunch": { ... },
      "dinner": { ... }
    },
    "Tuesday": { ... },
    ...
  }
}

Ensure all recipes:
1. Meet the daily calorie and protein targets when combined
2. Respect dietary restrictions
3. Can be prepared within the specified time limits
4. Include appropriate Ayurvedic principles
5. Use realistic Unsplash image URLs for food photography
6. Include detailed ingredients and instructions
`,
		prefs.Targets["calories"],
		prefs.Targets["protein"],
		prefs.HealthFocus["primary"],
		prefs.HealthFocus["secondary"],
		strings.Join(prefs.DietaryRestrictions, ", "),
		timeAvailability,
		strings.Join(prefs.CulturalBackground, ", "),
		prefs.FamiliarityLevel,
		prefs.About,
		prefs.FavoriteFoods,
	)
}
