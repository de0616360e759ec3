package validation

import (
	"strings"
	"testing"

	"fit-coach/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"25", 25, true},
		{"17", 17, true},
		{"99", 99, true},
		{" 30 ", 30, true},
		{"16", 0, false},
		{"100", 0, false},
		{"0", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"25.5", 0, false},
	}
	for _, tt := range tests {
		got, err := Age(tt.input)
		if tt.ok {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err, "input %q", tt.input)
			assert.True(t, models.IsValidation(err))
		}
	}
}

func TestGender(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"мужской", "male", true},
		{"МУЖ", "male", true},
		{"женский", "female", true},
		{"Жен", "female", true},
		{"male", "male", true},
		{"FEMALE", "female", true},
		{"другое", "", false},
		{"", "", false},
		{"м", "", false},
	}
	for _, tt := range tests {
		got, err := Gender(tt.input)
		if tt.ok {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err, "input %q", tt.input)
		}
	}
}

func TestHeight(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"180", 180, true},
		{"175.5", 175.5, true},
		{"175,5", 175.5, true},
		{"100", 0, false},
		{"250", 0, false},
		{"99.9", 0, false},
		{"tall", 0, false},
	}
	for _, tt := range tests {
		got, err := Height(tt.input)
		if tt.ok {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err, "input %q", tt.input)
		}
	}
}

// Both out-of-range directions must fail: a historical variant of this
// check let any weight above the upper bound through.
func TestWeightBounds(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"75", 75, true},
		{"21", 21, true},
		{"299", 299, true},
		{"80,5", 80.5, true},
		{"10", 0, false},
		{"310", 0, false},
		{"20", 0, false},
		{"300", 0, false},
		{"heavy", 0, false},
	}
	for _, tt := range tests {
		got, err := Weight(tt.input)
		if tt.ok {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err, "input %q", tt.input)
		}
	}
}

func TestActivityLevel(t *testing.T) {
	known := []models.ActivityLevel{{Level: 1}, {Level: 2}, {Level: 3}, {Level: 4}}

	got, err := ActivityLevel("2", known)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	// keyboard button label
	got, err = ActivityLevel("3 — Средний", known)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = ActivityLevel("9", known)
	assert.Error(t, err)

	_, err = ActivityLevel("high", known)
	assert.Error(t, err)

	// an empty snapshot rejects everything
	_, err = ActivityLevel("1", nil)
	assert.Error(t, err)
}

func TestPlanWeek(t *testing.T) {
	full := "ПОНЕДЕЛЬНИК: зал\nвторник: отдых\nСреда: бег\nчетверг: зал\nпятница: плавание\nсуббота: йога\nвоскресенье: отдых"
	assert.NoError(t, PlanWeek(full))

	// order and case must not matter
	assert.NoError(t, PlanWeek(strings.ToUpper(full)))

	err := PlanWeek("понедельник и вторник, а дальше как пойдет")
	require.Error(t, err)
	for _, day := range []string{"среда", "четверг", "пятница", "суббота", "воскресенье"} {
		assert.Contains(t, err.Error(), day)
	}
	assert.NotContains(t, err.Error(), "понедельник,")
}

func TestValidateField(t *testing.T) {
	levels := []models.ActivityLevel{{Level: 1}, {Level: 2}}

	update, err := ValidateField(FieldAge, "42", nil)
	require.NoError(t, err)
	require.NotNil(t, update.Age)
	assert.Equal(t, 42, *update.Age)

	update, err = ValidateField(FieldActivityLevel, "2", levels)
	require.NoError(t, err)
	require.NotNil(t, update.ActivityLevel)
	assert.Equal(t, 2, *update.ActivityLevel)

	_, err = ValidateField(FieldWeight, "500", nil)
	assert.Error(t, err)

	_, ok := ParseField("favorite_color")
	assert.False(t, ok)
}
