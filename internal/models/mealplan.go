// Package models содержит структуры недельного плана питания,
// возвращаемого генератором и сохраняемого в хранилище.
package models

import "time"

// PlannedMeal описывает одно блюдо в ячейке плана (день недели + приём пищи).
type PlannedMeal struct {
	Recipe       string   `json:"recipe"`       // Название рецепта
	PrepTime     string   `json:"prepTime"`     // Время приготовления, например "25 mins"
	Calories     int      `json:"calories"`     // Калорийность блюда
	Protein      int      `json:"protein"`      // Белок в граммах
	Image        string   `json:"image"`        // Ссылка на изображение блюда
	Ayurvedic    string   `json:"ayurvedic"`    // Аюрведический принцип (баланс дош)
	Ingredients  []string `json:"ingredients"`  // Список ингредиентов
	Instructions []string `json:"instructions"` // Пошаговые инструкции
}

// DayPlan содержит три приёма пищи одного дня.
type DayPlan struct {
	Breakfast PlannedMeal `json:"breakfast"`
	Lunch     PlannedMeal `json:"lunch"`
	Dinner    PlannedMeal `json:"dinner"`
}

// MealPlan представляет текущий недельный план пользователя.
// У пользователя всегда не больше одного плана, прежний перезаписывается.
type MealPlan struct {
	WeeklyPlan map[string]DayPlan `json:"weeklyPlan"` // День недели -> план дня
	UpdatedAt  time.Time          `json:"updatedAt,omitempty"`
}

// Weekdays перечисляет дни недели в порядке, ожидаемом от генератора.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
