// Package service is the layer between the web API and its
// collaborators: the storage, which reports domain error kinds, and the
// AI generator.
package service

import (
	"context"

	"fit-coach/internal/models"
	"fit-coach/pkg/logger"
)

// Storage is the persistence contract the service depends on.
// *db.PostgresDB implements it.
type Storage interface {
	CreateUser(ctx context.Context, input *models.UserInput) error
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, userID int64, patch *models.UserUpdate) error
	DeleteUser(ctx context.Context, userID int64) error

	GetActivityLevel(ctx context.Context, level int) (*models.ActivityLevel, error)
	ListActivityLevels(ctx context.Context) ([]models.ActivityLevel, error)
	CreateActivityLevel(ctx context.Context, level *models.ActivityLevel) error
	UpdateActivityLevel(ctx context.Context, level *models.ActivityLevel) error
	DeleteActivityLevel(ctx context.Context, level int) error

	GetPlanByUserID(ctx context.Context, userID int64) (*models.TrainingPlan, error)
	CreatePlanForUser(ctx context.Context, userID int64, description string) error
	UpdatePlanByUserID(ctx context.Context, userID int64, description string) error
	DeletePlanByUserID(ctx context.Context, userID int64) error
}

// Generator is the AI collaborator contract. *ai.Client implements it.
type Generator interface {
	GeneratePlan(ctx context.Context, user *models.User, extraRequest string) (string, error)
	GenerateAnswer(ctx context.Context, user *models.User, request string) (string, error)
}

type Service struct {
	storage Storage
	ai      Generator
	logger  *logger.Logger
}

func New(storage Storage, generator Generator, l *logger.Logger) *Service {
	return &Service{
		storage: storage,
		ai:      generator,
		logger:  l,
	}
}
