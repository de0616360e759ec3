package validation

import "fit-coach/internal/models"

// Field enumerates the editable profile fields. Dispatch over this set is
// explicit so that adding a field without a validator fails to compile.
type Field string

const (
	FieldAge           Field = "age"
	FieldGender        Field = "gender"
	FieldHeight        Field = "height_cm"
	FieldWeight        Field = "weight_kg"
	FieldActivityLevel Field = "activity_level"
	FieldGoal          Field = "goal"
)

// DisplayName returns the user-facing label for the field.
func (f Field) DisplayName() string {
	switch f {
	case FieldAge:
		return "Возраст"
	case FieldGender:
		return "Пол"
	case FieldHeight:
		return "Рост (см)"
	case FieldWeight:
		return "Вес (кг)"
	case FieldActivityLevel:
		return "Уровень активности"
	case FieldGoal:
		return "Цель тренировок"
	}
	return string(f)
}

// ParseField maps a raw field name to a known Field.
func ParseField(name string) (Field, bool) {
	switch Field(name) {
	case FieldAge, FieldGender, FieldHeight, FieldWeight, FieldActivityLevel, FieldGoal:
		return Field(name), true
	}
	return "", false
}

// ValidateField runs the matching validator and builds a single-field
// update. The activity-level snapshot is only consulted for that field.
func ValidateField(f Field, input string, levels []models.ActivityLevel) (models.UserUpdate, error) {
	var update models.UserUpdate
	switch f {
	case FieldAge:
		age, err := Age(input)
		if err != nil {
			return update, err
		}
		update.Age = &age
	case FieldGender:
		gender, err := Gender(input)
		if err != nil {
			return update, err
		}
		update.Gender = &gender
	case FieldHeight:
		height, err := Height(input)
		if err != nil {
			return update, err
		}
		update.HeightCm = &height
	case FieldWeight:
		weight, err := Weight(input)
		if err != nil {
			return update, err
		}
		update.WeightKg = &weight
	case FieldActivityLevel:
		level, err := ActivityLevel(input, levels)
		if err != nil {
			return update, err
		}
		update.ActivityLevel = &level
	case FieldGoal:
		goal, err := Goal(input)
		if err != nil {
			return update, err
		}
		update.Goal = &goal
	}
	return update, nil
}
