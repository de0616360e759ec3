package service

import (
	"context"
	"strconv"

	"fit-coach/internal/models"
	"fit-coach/internal/validation"
)

// CreateUser validates the input and creates a profile. A duplicate
// identity surfaces as models.ErrAlreadyExists; an unknown activity
// level as models.ErrNotFound.
func (s *Service) CreateUser(ctx context.Context, input *models.UserInput) error {
	if err := validateUserInput(input); err != nil {
		return err
	}
	if err := s.storage.CreateUser(ctx, input); err != nil {
		return err
	}
	s.logger.Infow("user created", "user_id", input.ID)
	return nil
}

func (s *Service) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.storage.GetUser(ctx, userID)
}

func (s *Service) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.storage.GetAllUsers(ctx)
}

// UpdateUser applies a validated partial update.
func (s *Service) UpdateUser(ctx context.Context, userID int64, patch *models.UserUpdate) error {
	if err := validateUserPatch(patch); err != nil {
		return err
	}
	if err := s.storage.UpdateUser(ctx, userID, patch); err != nil {
		return err
	}
	s.logger.Infow("user updated", "user_id", userID)
	return nil
}

func (s *Service) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.storage.DeleteUser(ctx, userID); err != nil {
		return err
	}
	s.logger.Infow("user deleted", "user_id", userID)
	return nil
}

// Chat answers a free-text user message with AI, using the stored
// profile as context.
func (s *Service) Chat(ctx context.Context, req *models.AIRequest) (string, error) {
	user, err := s.storage.GetUser(ctx, req.UserID)
	if err != nil {
		return "", err
	}
	return s.ai.GenerateAnswer(ctx, user, req.Content)
}

// validateUserInput runs the shared field validators over a creation
// payload and normalizes the gender value.
func validateUserInput(input *models.UserInput) error {
	if _, err := validation.Age(strconv.Itoa(input.Age)); err != nil {
		return err
	}
	gender, err := validation.Gender(input.Gender)
	if err != nil {
		return err
	}
	input.Gender = gender
	if _, err := validation.Height(formatFloat(input.HeightCm)); err != nil {
		return err
	}
	if _, err := validation.Weight(formatFloat(input.WeightKg)); err != nil {
		return err
	}
	return nil
}

func validateUserPatch(patch *models.UserUpdate) error {
	if patch.Age != nil {
		if _, err := validation.Age(strconv.Itoa(*patch.Age)); err != nil {
			return err
		}
	}
	if patch.Gender != nil {
		gender, err := validation.Gender(*patch.Gender)
		if err != nil {
			return err
		}
		patch.Gender = &gender
	}
	if patch.HeightCm != nil {
		if _, err := validation.Height(formatFloat(*patch.HeightCm)); err != nil {
			return err
		}
	}
	if patch.WeightKg != nil {
		if _, err := validation.Weight(formatFloat(*patch.WeightKg)); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
