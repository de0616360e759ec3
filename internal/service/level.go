package service

import (
	"context"

	"fit-coach/internal/models"
)

// Activity levels are administratively curated; these calls pass
// through to storage, which reports the domain error kinds.

func (s *Service) GetActivityLevel(ctx context.Context, level int) (*models.ActivityLevel, error) {
	return s.storage.GetActivityLevel(ctx, level)
}

func (s *Service) ListActivityLevels(ctx context.Context) ([]models.ActivityLevel, error) {
	return s.storage.ListActivityLevels(ctx)
}

func (s *Service) CreateActivityLevel(ctx context.Context, level *models.ActivityLevel) error {
	if err := s.storage.CreateActivityLevel(ctx, level); err != nil {
		return err
	}
	s.logger.Infow("activity level created", "level", level.Level)
	return nil
}

func (s *Service) UpdateActivityLevel(ctx context.Context, level *models.ActivityLevel) error {
	return s.storage.UpdateActivityLevel(ctx, level)
}

func (s *Service) DeleteActivityLevel(ctx context.Context, level int) error {
	return s.storage.DeleteActivityLevel(ctx, level)
}
