package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
)

func fixedPreferences() models.Preferences {
	return models.Preferences{
		Targets:             map[string]int{"calories": 2000, "protein": 150},
		HealthFocus:         map[string]string{"primary": "digestion", "secondary": "energy"},
		DietaryRestrictions: []string{"vegan", "gluten-free"},
		TimeAvailability: map[string]map[string]string{
			"Monday":  {"breakfast": "10", "lunch": "20", "dinner": "45"},
			"Tuesday": {"breakfast": "15", "lunch": "30", "dinner": "60"},
		},
		About:              "Busy software engineer, cooks in the evening.",
		FavoriteFoods:      "dal, roasted vegetables",
		FamiliarityLevel:   80,
		CulturalBackground: []string{"Indian", "Mediterranean"},
	}
}

func TestBuildPrompt_ContainsPreferenceValues(t *testing.T) {
	prompt := BuildPrompt(fixedPreferences())

	assert.Contains(t, prompt, "Calories: 2000")
	assert.Contains(t, prompt, "Protein: 150g")
	assert.Contains(t, prompt, "Primary: digestion")
	assert.Contains(t, prompt, "Secondary: energy")
	assert.Contains(t, prompt, "Dietary Restrictions: vegan, gluten-free")
	assert.Contains(t, prompt, "Cultural Background: Indian, Mediterranean")
	assert.Contains(t, prompt, "Familiarity Level: 80% (higher means more adventurous)")
	assert.Contains(t, prompt, "Favorite Foods: dal, roasted vegetables")
	assert.Contains(t, prompt, "Monday:\n    - Breakfast: 10 minutes\n    - Lunch: 20 minutes\n    - Dinner: 45 minutes")
	assert.Contains(t, prompt, `"weeklyPlan"`)
}

func TestBuildPrompt_IsDeterministic(t *testing.T) {
	first := BuildPrompt(fixedPreferences())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildPrompt(fixedPreferences()))
	}
}

func TestBuildPrompt_WeekdaysInFixedOrder(t *testing.T) {
	prompt := BuildPrompt(fixedPreferences())

	mondayIdx := strings.Index(prompt, "Monday:")
	tuesdayIdx := strings.Index(prompt, "Tuesday:")
	assert.GreaterOrEqual(t, mondayIdx, 0)
	assert.GreaterOrEqual(t, tuesdayIdx, 0)
	assert.Less(t, mondayIdx, tuesdayIdx)
}
