package permission

import (
	"context"
	"time"
)

// UserPermission associates a user with a site and a set of permission names.
// siteId is a weak reference: existence is checked before creation, not
// enforced by the store.
type UserPermission struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	SiteID      string    `json:"site_id"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
}

type RepositoryAPI interface {
	Create(ctx context.Context, p *UserPermission) error
	FindAllByUserID(ctx context.Context, userID string) ([]*UserPermission, error)
}

// ServiceAPI is the surface other services consume. Rows are append-only:
// there is no update or delete operation.
type ServiceAPI interface {
	Create(ctx context.Context, p *UserPermission) error
	FindAllByUserID(ctx context.Context, userID string) ([]*UserPermission, error)
}
