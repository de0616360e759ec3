package service

import (
	"context"
	"errors"

	"fit-coach/internal/models"
	"fit-coach/internal/validation"
)

// GeneratePlan produces a weekly plan with AI and stores it for the
// user: created on the first run, updated in place afterwards.
func (s *Service) GeneratePlan(ctx context.Context, userID int64, extraRequest string) error {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	text, err := s.ai.GeneratePlan(ctx, user, extraRequest)
	if err != nil {
		return err
	}

	err = s.storage.CreatePlanForUser(ctx, userID, text)
	if errors.Is(err, models.ErrAlreadyExists) {
		err = s.storage.UpdatePlanByUserID(ctx, userID, text)
	}
	if err != nil {
		return err
	}
	s.logger.Infow("training plan generated", "user_id", userID)
	return nil
}

func (s *Service) GetUserPlan(ctx context.Context, userID int64) (*models.TrainingPlan, error) {
	return s.storage.GetPlanByUserID(ctx, userID)
}

// UpdateUserPlan replaces the plan text manually. The text must cover
// all seven days of the week.
func (s *Service) UpdateUserPlan(ctx context.Context, userID int64, input *models.PlanInput) error {
	if err := validation.PlanWeek(input.PlanDescription); err != nil {
		return err
	}
	return s.storage.UpdatePlanByUserID(ctx, userID, input.PlanDescription)
}

func (s *Service) DeleteUserPlan(ctx context.Context, userID int64) error {
	return s.storage.DeletePlanByUserID(ctx, userID)
}
