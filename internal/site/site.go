package site

import (
	"context"
	"time"
)

type Site struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RepositoryAPI interface {
	Create(ctx context.Context, s *Site) error
	FindByID(ctx context.Context, id string) (*Site, error)
	FindAllByIDs(ctx context.Context, ids []string) ([]*Site, error)
	FindAll(ctx context.Context, offset, limit int) ([]*Site, error)
}

type ServiceAPI interface {
	Create(ctx context.Context, dto CreateSiteDTO) (*Site, error)
	FindByID(ctx context.Context, id string) (*Site, error)
	FindAllByIDs(ctx context.Context, ids []string) ([]*Site, error)
	FindAll(ctx context.Context, offset, limit int) ([]*Site, error)
}
