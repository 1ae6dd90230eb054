package generator

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
)

func fullPlanJSON(t *testing.T) string {
	t.Helper()

	meal := models.PlannedMeal{
		Recipe:       "Chickpea Curry",
		PrepTime:     "25 mins",
		Calories:     550,
		Protein:      30,
		Image:        "https://images.unsplash.com/photo-chickpea",
		Ayurvedic:    "pitta-balancing",
		Ingredients:  []string{"chickpeas", "tomatoes"},
		Instructions: []string{"soak", "simmer"},
	}
	weekly := make(map[string]models.DayPlan, len(models.Weekdays))
	for _, day := range models.Weekdays {
		weekly[day] = models.DayPlan{Breakfast: meal, Lunch: meal, Dinner: meal}
	}
	raw, err := json.Marshal(map[string]any{"weeklyPlan": weekly})
	require.NoError(t, err)
	return string(raw)
}

func TestParsePlan_ValidResponse(t *testing.T) {
	plan, err := ParsePlan(fullPlanJSON(t))
	require.NoError(t, err)
	require.NotNil(t, plan)

	assert.Len(t, plan.WeeklyPlan, 7)
	assert.Equal(t, "Chickpea Curry", plan.WeeklyPlan["Monday"].Breakfast.Recipe)
	assert.Equal(t, []string{"soak", "simmer"}, plan.WeeklyPlan["Sunday"].Dinner.Instructions)
}

func TestParsePlan_StripsMarkdownFences(t *testing.T) {
	fenced := "```json\n" + fullPlanJSON(t) + "\n```"

	plan, err := ParsePlan(fenced)
	require.NoError(t, err)
	assert.Len(t, plan.WeeklyPlan, 7)
}

func TestParsePlan_InvalidJSON(t *testing.T) {
	plan, err := ParsePlan("this is not json at all")

	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, ErrMalformedPlan))
}

func TestParsePlan_MissingWeeklyPlanKey(t *testing.T) {
	plan, err := ParsePlan(`{"plan": {}}`)

	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, ErrMalformedPlan))
}

func TestParsePlan_MissingDayIsRejected(t *testing.T) {
	var envelope map[string]map[string]models.DayPlan
	require.NoError(t, json.Unmarshal([]byte(fullPlanJSON(t)), &envelope))
	delete(envelope["weeklyPlan"], "Thursday")
	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	plan, err := ParsePlan(string(raw))

	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, ErrIncompletePlan))
}

func TestParsePlan_MissingMealIsRejected(t *testing.T) {
	var envelope map[string]map[string]models.DayPlan
	require.NoError(t, json.Unmarshal([]byte(fullPlanJSON(t)), &envelope))
	day := envelope["weeklyPlan"]["Friday"]
	day.Lunch = models.PlannedMeal{}
	envelope["weeklyPlan"]["Friday"] = day
	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	plan, err := ParsePlan(string(raw))

	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, ErrIncompletePlan))
}
