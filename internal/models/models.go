package models

import (
	"fmt"
	"time"
)

// User is a fitness coaching profile keyed by the Telegram user ID.
// The key is supplied by the chat platform and never generated here.
type User struct {
	ID            int64          `json:"id"`
	Username      string         `json:"username,omitempty"`
	Age           int            `json:"age"`
	WeightKg      float64        `json:"weight_kg"`
	HeightCm      float64        `json:"height_cm"`
	Gender        string         `json:"gender"`
	Goal          string         `json:"goal,omitempty"`
	ActivityLevel int            `json:"activity_level"`
	LevelInfo     *ActivityLevel `json:"activity_level_info,omitempty"`
	TrainingPlan  *TrainingPlan  `json:"training_plan,omitempty"`
	CreatedAt     time.Time      `json:"created_at,omitempty"`
	UpdatedAt     time.Time      `json:"updated_at,omitempty"`
}

// ActivityLevel is an administratively curated lookup entry.
// The numeric level orders the tiers and acts as the natural key.
type ActivityLevel struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FormattedString renders the level for chat output.
func (a ActivityLevel) FormattedString() string {
	return fmt.Sprintf("<b>Уровень активности %d</b>:\n<b>%s</b>\n%s\n", a.Level, a.Name, a.Description)
}

// TrainingPlan is the weekly plan text owned by exactly one user.
type TrainingPlan struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	PlanDescription string `json:"plan_description"`
}

// UserInput is the payload for profile creation.
type UserInput struct {
	ID            int64   `json:"id"`
	Username      string  `json:"username,omitempty"`
	Age           int     `json:"age"`
	WeightKg      float64 `json:"weight_kg"`
	HeightCm      float64 `json:"height_cm"`
	Gender        string  `json:"gender"`
	Goal          string  `json:"goal,omitempty"`
	ActivityLevel int     `json:"activity_level"`
}

// UserUpdate is a partial update: nil fields are left untouched.
type UserUpdate struct {
	Username      *string  `json:"username,omitempty"`
	Age           *int     `json:"age,omitempty"`
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	HeightCm      *float64 `json:"height_cm,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	Goal          *string  `json:"goal,omitempty"`
	ActivityLevel *int     `json:"activity_level,omitempty"`
}

// AIRequest carries a user's free-text message to the AI collaborator.
type AIRequest struct {
	UserID  int64  `json:"user_id"`
	Content string `json:"content"`
}

// PlanInput is the payload for manual plan creation or update.
type PlanInput struct {
	PlanDescription string `json:"plan_description"`
}
