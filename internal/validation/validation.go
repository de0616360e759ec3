// Package validation holds the field validators shared by the onboarding
// dialogue, the profile edit flow and the API input checks. Validators are
// pure: raw text in, typed value or *models.ValidationError out.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"fit-coach/internal/models"
)

const (
	minAge = 16
	maxAge = 100

	minHeightCm = 100
	maxHeightCm = 250

	minWeightKg = 20
	maxWeightKg = 300
)

// genders maps accepted input prefixes to canonical values.
var genders = map[string]string{
	"муж":    "male",
	"жен":    "female",
	"male":   "male",
	"female": "female",
}

// Age parses and range-checks the user's age.
func Age(input string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || age <= minAge || age >= maxAge {
		return 0, models.NewValidationError("age",
			fmt.Sprintf("Возраст должен быть числом от %d до %d", minAge, maxAge))
	}
	return age, nil
}

// Gender matches input against the closed gender set, case-insensitively,
// accepting localized prefixes.
func Gender(input string) (string, error) {
	lowered := strings.ToLower(strings.TrimSpace(input))
	if g, ok := genders[lowered]; ok {
		return g, nil
	}
	runes := []rune(lowered)
	if len(runes) >= 3 {
		if g, ok := genders[string(runes[:3])]; ok {
			return g, nil
		}
	}
	return "", models.NewValidationError("gender",
		"Такого пола нет\nВыберите ваш пол c помощью кнопок, пожалуйста")
}

// Height parses the height in centimeters, accepting both '.' and ','
// as the decimal separator.
func Height(input string) (float64, error) {
	height, err := parseFloat(input)
	if err != nil || height <= minHeightCm || height >= maxHeightCm {
		return 0, models.NewValidationError("height_cm",
			fmt.Sprintf("Рост должен быть числом от %d до %d", minHeightCm, maxHeightCm))
	}
	return height, nil
}

// Weight parses the weight in kilograms. A value is rejected when it is
// below the lower bound or above the upper bound.
func Weight(input string) (float64, error) {
	weight, err := parseFloat(input)
	if err != nil || weight <= minWeightKg || weight >= maxWeightKg {
		return 0, models.NewValidationError("weight_kg",
			fmt.Sprintf("Вес должен быть числом от %d до %d", minWeightKg, maxWeightKg))
	}
	return weight, nil
}

// ActivityLevel checks membership against the current snapshot of known
// levels. The snapshot may go stale between calls; callers fetch it fresh.
// Keyboard buttons carry a "<level> — <name>" label, so only the leading
// number is parsed.
func ActivityLevel(input string, known []models.ActivityLevel) (int, error) {
	fail := models.NewValidationError("activity_level",
		"Такого уровня активности нет\nВыберите ваш уровень активности c помощью кнопок, пожалуйста")

	fields := strings.Fields(input)
	if len(fields) == 0 {
		return 0, fail
	}
	level, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fail
	}
	for _, k := range known {
		if k.Level == level {
			return level, nil
		}
	}
	return 0, fail
}

// Goal accepts any non-empty free text.
func Goal(input string) (string, error) {
	goal := strings.TrimSpace(input)
	if goal == "" {
		return "", models.NewValidationError("goal", "Цель не может быть пустой")
	}
	return goal, nil
}

// weekdays in display order; plan text must mention every one of them.
var weekdays = []string{
	"понедельник", "вторник", "среда", "четверг", "пятница", "суббота", "воскресенье",
}

// PlanWeek verifies that the plan text covers all seven days of the week
// (case-insensitive substring match). The failure names the missing days.
func PlanWeek(text string) error {
	lowered := strings.ToLower(text)
	var missing []string
	for _, day := range weekdays {
		if !strings.Contains(lowered, day) {
			missing = append(missing, day)
		}
	}
	if len(missing) > 0 {
		return models.NewValidationError("plan_description",
			"В плане не хватает дней недели: "+strings.Join(missing, ", "))
	}
	return nil
}

func parseFloat(input string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	return strconv.ParseFloat(normalized, 64)
}
