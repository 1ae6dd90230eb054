// Package models содержит структуры пользовательских предпочтений,
// на основе которых строится запрос к генератору плана питания.
package models

// Preferences хранит все настройки пользователя для генерации плана питания.
// Запись одна на пользователя и всегда перезаписывается целиком (upsert).
type Preferences struct {
	Targets              map[string]int               `json:"targets"`              // Дневные цели: calories, protein
	HealthFocus          map[string]string            `json:"healthFocus"`          // Направления здоровья: primary, secondary
	DietaryRestrictions  []string                     `json:"dietaryRestrictions"`  // Ограничения в питании, порядок значим
	TimeAvailability     map[string]map[string]string `json:"timeAvailability"`     // День недели -> приём пищи -> минуты
	About                string                       `json:"about"`                // Свободный текст о пользователе
	FavoriteFoods        string                       `json:"favoriteFoods"`        // Любимые блюда
	SampleMealPlan       string                       `json:"sampleMealPlan"`       // Пример желаемого плана
	SocialMediaFavorites string                       `json:"socialMediaFavorites"` // Избранное из соцсетей
	FamiliarityLevel     int                          `json:"familiarityLevel"`     // Готовность к новым блюдам, в процентах
	CulturalBackground   []string                     `json:"culturalBackground"`   // Культурные кухни, порядок значим
}
