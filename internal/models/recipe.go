// Package models содержит доменные структуры рецептов.
// Рецепт существует независимо от плана питания: дублирование данных между
// встроенными в план блюдами и отдельными рецептами — намеренная денормализация.
package models

import "time"

// Recipe представляет отдельный рецепт пользователя с метаданными
// о питательности и приготовлении.
type Recipe struct {
	ID           string    `json:"id"`           // Идентификатор, назначается хранилищем
	UserUID      string    `json:"-"`            // Владелец рецепта, наружу не отдаётся
	Name         string    `json:"name"`         // Название рецепта
	Image        string    `json:"image"`        // Ссылка на изображение
	PrepTime     string    `json:"prepTime"`     // Время приготовления
	Servings     int       `json:"servings"`     // Количество порций
	Difficulty   string    `json:"difficulty"`   // Сложность приготовления
	Ayurvedic    string    `json:"ayurvedic"`    // Аюрведический принцип
	Tags         []string  `json:"tags"`         // Теги, порядок значим
	Ingredients  []string  `json:"ingredients"`  // Ингредиенты
	Instructions []string  `json:"instructions"` // Инструкции
	Calories     int       `json:"calories"`     // Калории
	Protein      int       `json:"protein"`      // Белки, г
	Carbs        int       `json:"carbs"`        // Углеводы, г
	Fat          int       `json:"fat"`          // Жиры, г
	CreatedAt    time.Time `json:"createdAt"`    // Дата создания
}

// DummyRecipe используется для приёма данных рецепта из JSON-запроса,
// прежде чем конвертировать их в Recipe.
type DummyRecipe struct {
	Name         string   `json:"name" validate:"required"`
	Image        string   `json:"image"`
	PrepTime     string   `json:"prepTime" validate:"required"`
	Servings     int      `json:"servings" validate:"required,gt=0"`
	Difficulty   string   `json:"difficulty" validate:"required"`
	Ayurvedic    string   `json:"ayurvedic"`
	Tags         []string `json:"tags"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1"`
	Instructions []string `json:"instructions" validate:"required,min=1"`
	Calories     int      `json:"calories" validate:"required,gt=0"`
	Protein      int      `json:"protein" validate:"gte=0"`
	Carbs        int      `json:"carbs" validate:"gte=0"`
	Fat          int      `json:"fat" validate:"gte=0"`
}
