package site

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/user-management/internal"
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

func (s *Service) Create(ctx context.Context, dto CreateSiteDTO) (*Site, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	st := &Site{
		Name: dto.Name,
		URL:  dto.URL,
	}

	if err := s.repo.Create(ctx, st); err != nil {
		s.logger.Error("failed to create site", "name", dto.Name, "error", err)
		return nil, fmt.Errorf("create site: %w", err)
	}

	s.logger.Info("site created", "site_id", st.ID, "name", st.Name)
	return st, nil
}

// FindByID is the existence check consumed by the user service before a
// permission record may reference the site.
func (s *Service) FindByID(ctx context.Context, id string) (*Site, error) {
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, internal.ErrSiteNotFound) {
			return nil, internal.ErrSiteNotFound
		}
		return nil, fmt.Errorf("find site %s: %w", id, err)
	}
	return st, nil
}

// FindAllByIDs resolves site references in bulk. Unknown ids are skipped
// rather than failing the whole resolution.
func (s *Service) FindAllByIDs(ctx context.Context, ids []string) ([]*Site, error) {
	if len(ids) == 0 {
		return []*Site{}, nil
	}

	sites, err := s.repo.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find sites by ids: %w", err)
	}
	return sites, nil
}

func (s *Service) FindAll(ctx context.Context, offset, limit int) ([]*Site, error) {
	sites, err := s.repo.FindAll(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("find all sites: %w", err)
	}
	return sites, nil
}
