package permission

import (
	"context"
	"fmt"
	"log/slog"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) Create(ctx context.Context, p *UserPermission) error {
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("failed to create user permission",
			"user_id", p.UserID,
			"site_id", p.SiteID,
			"error", err)
		return fmt.Errorf("create user permission: %w", err)
	}

	s.logger.Info("user permission created",
		"user_id", p.UserID,
		"site_id", p.SiteID,
		"permissions", p.Permissions)
	return nil
}

func (s *Service) FindAllByUserID(ctx context.Context, userID string) ([]*UserPermission, error) {
	perms, err := s.repo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find permissions for user %s: %w", userID, err)
	}
	return perms, nil
}
