package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
)

var (
	// ErrMalformedPlan возвращается, когда ответ модели не является
	// корректным JSON или не содержит ключ weeklyPlan.
	ErrMalformedPlan = errors.New("malformed meal plan response")

	// ErrIncompletePlan возвращается, когда план синтаксически корректен,
	// но в нём не хватает дней недели или приёмов пищи.
	// Частичные планы не принимаются и не ремонтируются.
	ErrIncompletePlan = errors.New("incomplete meal plan response")
)

type planEnvelope struct {
	WeeklyPlan map[string]models.DayPlan `json:"weeklyPlan"`
}

// ParsePlan разбирает текстовый ответ модели в структуру недельного плана.
// Маркеры markdown-блока кода по краям ответа отбрасываются.
func ParsePlan(content string) (*models.MealPlan, error) {
	const op = "generator.ParsePlan"

	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var envelope planEnvelope
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrMalformedPlan, err)
	}
	if envelope.WeeklyPlan == nil {
		return nil, fmt.Errorf("%s: %w: missing weeklyPlan key", op, ErrMalformedPlan)
	}

	for _, day := range models.Weekdays {
		dayPlan, ok := envelope.WeeklyPlan[day]
		if !ok {
			return nil, fmt.Errorf("%s: %w: missing day %s", op, ErrIncompletePlan, day)
		}
		if dayPlan.Breakfast.Recipe == "" || dayPlan.Lunch.Recipe == "" || dayPlan.Dinner.Recipe == "" {
			return nil, fmt.Errorf("%s: %w: missing meal on %s", op, ErrIncompletePlan, day)
		}
	}

	return &models.MealPlan{WeeklyPlan: envelope.WeeklyPlan}, nil
}
