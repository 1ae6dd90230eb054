package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
	"github.com/magabrotheeeer/vitalbites-backend/internal/storage"
)

type MealPlanRepoMock struct{ mock.Mock }

func (m *MealPlanRepoMock) SaveMealPlan(ctx context.Context, userUID string, plan models.MealPlan) error {
	return m.Called(ctx, userUID, plan).Error(0)
}

func (m *MealPlanRepoMock) GetMealPlan(ctx context.Context, userUID string) (*models.MealPlan, error) {
	args := m.Called(ctx, userUID)
	plan, _ := args.Get(0).(*models.MealPlan)
	return plan, args.Error(1)
}

func (m *MealPlanRepoMock) GetPreferences(ctx context.Context, userUID string) (*models.Preferences, error) {
	args := m.Called(ctx, userUID)
	prefs, _ := args.Get(0).(*models.Preferences)
	return prefs, args.Error(1)
}

type GeneratorMock struct{ mock.Mock }

func (m *GeneratorMock) GenerateMealPlan(ctx context.Context, prefs models.Preferences) (*models.MealPlan, error) {
	args := m.Called(ctx, prefs)
	plan, _ := args.Get(0).(*models.MealPlan)
	return plan, args.Error(1)
}

func testPlan() *models.MealPlan {
	meal := models.PlannedMeal{Recipe: "Oatmeal", PrepTime: "10 mins", Calories: 400, Protein: 15}
	weekly := make(map[string]models.DayPlan, len(models.Weekdays))
	for _, day := range models.Weekdays {
		weekly[day] = models.DayPlan{Breakfast: meal, Lunch: meal, Dinner: meal}
	}
	return &models.MealPlan{WeeklyPlan: weekly}
}

func TestMealPlan_Generate_WithStoredPreferences(t *testing.T) {
	prefs := &models.Preferences{
		Targets:          map[string]int{"calories": 2000, "protein": 150},
		FamiliarityLevel: 50,
	}

	repo := new(MealPlanRepoMock)
	repo.On("GetPreferences", mock.Anything, "uid-1").Return(prefs, nil)
	repo.On("SaveMealPlan", mock.Anything, "uid-1", mock.Anything).Return(nil)

	gen := new(GeneratorMock)
	gen.On("GenerateMealPlan", mock.Anything, *prefs).Return(testPlan(), nil)

	svc := NewMealPlanService(repo, gen, NewNoopLogger())

	plan, err := svc.Generate(context.Background(), "uid-1", nil)

	require.NoError(t, err)
	assert.Len(t, plan.WeeklyPlan, 7)
	assert.False(t, plan.UpdatedAt.IsZero())
	repo.AssertExpectations(t)
	gen.AssertExpectations(t)
}

func TestMealPlan_Generate_WithOverride(t *testing.T) {
	override := &models.Preferences{
		Targets:          map[string]int{"calories": 1800, "protein": 120},
		FamiliarityLevel: 90,
	}

	repo := new(MealPlanRepoMock)
	repo.On("SaveMealPlan", mock.Anything, "uid-1", mock.Anything).Return(nil)

	gen := new(GeneratorMock)
	gen.On("GenerateMealPlan", mock.Anything, *override).Return(testPlan(), nil)

	svc := NewMealPlanService(repo, gen, NewNoopLogger())

	_, err := svc.Generate(context.Background(), "uid-1", override)

	require.NoError(t, err)
	// сохранённый профиль не читается, когда предпочтения пришли в запросе
	repo.AssertNotCalled(t, "GetPreferences", mock.Anything, mock.Anything)
}

func TestMealPlan_Generate_PreferencesMissing(t *testing.T) {
	repo := new(MealPlanRepoMock)
	repo.On("GetPreferences", mock.Anything, "uid-1").Return(nil, storage.ErrNotFound)

	svc := NewMealPlanService(repo, new(GeneratorMock), NewNoopLogger())

	plan, err := svc.Generate(context.Background(), "uid-1", nil)

	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, ErrPreferencesMissing))
}

func TestMealPlan_Generate_Timeout(t *testing.T) {
	prefs := &models.Preferences{FamiliarityLevel: 50}

	repo := new(MealPlanRepoMock)
	repo.On("GetPreferences", mock.Anything, "uid-1").Return(prefs, nil)

	gen := new(GeneratorMock)
	gen.On("GenerateMealPlan", mock.Anything, *prefs).Return(nil, context.DeadlineExceeded)

	svc := NewMealPlanService(repo, gen, NewNoopLogger())

	_, err := svc.Generate(context.Background(), "uid-1", nil)

	assert.True(t, errors.Is(err, ErrGenerationTimeout))
	// неудачная генерация не должна трогать сохранённый план
	repo.AssertNotCalled(t, "SaveMealPlan", mock.Anything, mock.Anything, mock.Anything)
}

func TestMealPlan_Generate_GeneratorError(t *testing.T) {
	prefs := &models.Preferences{FamiliarityLevel: 50}
	genErr := errors.New("upstream returned garbage")

	repo := new(MealPlanRepoMock)
	repo.On("GetPreferences", mock.Anything, "uid-1").Return(prefs, nil)

	gen := new(GeneratorMock)
	gen.On("GenerateMealPlan", mock.Anything, *prefs).Return(nil, genErr)

	svc := NewMealPlanService(repo, gen, NewNoopLogger())

	_, err := svc.Generate(context.Background(), "uid-1", nil)

	assert.True(t, errors.Is(err, genErr))
	repo.AssertNotCalled(t, "SaveMealPlan", mock.Anything, mock.Anything, mock.Anything)
}

func TestMealPlan_Current(t *testing.T) {
	stored := testPlan()
	stored.UpdatedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	repo := new(MealPlanRepoMock)
	repo.On("GetMealPlan", mock.Anything, "uid-1").Return(stored, nil)

	svc := NewMealPlanService(repo, new(GeneratorMock), NewNoopLogger())

	plan, err := svc.Current(context.Background(), "uid-1")

	require.NoError(t, err)
	assert.Equal(t, stored, plan)
}

func TestMealPlan_Current_NotFound(t *testing.T) {
	repo := new(MealPlanRepoMock)
	repo.On("GetMealPlan", mock.Anything, "uid-1").Return(nil, storage.ErrNotFound)

	svc := NewMealPlanService(repo, new(GeneratorMock), NewNoopLogger())

	plan, err := svc.Current(context.Background(), "uid-1")

	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}
