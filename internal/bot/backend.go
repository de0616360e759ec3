package bot

import (
	"context"

	"fit-coach/internal/models"
)

// Backend is the bot's view of the fit-coach API. All calls surface the
// domain error kinds (models.ErrNotFound, models.ErrAlreadyExists,
// models.ErrGenerationFailed) or a transport failure; the bot never
// retries silently.
type Backend interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	CreateUser(ctx context.Context, input *models.UserInput) error
	UpdateUser(ctx context.Context, userID int64, patch *models.UserUpdate) error
	GetActivityLevels(ctx context.Context) ([]models.ActivityLevel, error)
	GetUserPlan(ctx context.Context, userID int64) (string, error)
	GeneratePlan(ctx context.Context, userID int64, extraRequest string) error
	Chat(ctx context.Context, userID int64, message string) (string, error)
}
