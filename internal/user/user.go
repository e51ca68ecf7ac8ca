package user

import (
	"context"
	"time"

	"github.com/frahmantamala/user-management/internal/permission"
	"github.com/frahmantamala/user-management/internal/site"
)

// User is the account entity: identity, credential, status flags.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	IsActive     bool      `json:"is_active"`
	IsLocked     bool      `json:"is_locked"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AdminUsername is the reserved account excluded from listings and bulk
// deletion.
const AdminUsername = "admin"

// LoginResult is what a successful authentication returns: the signed token
// and the sites the user holds permissions on.
type LoginResult struct {
	Token string       `json:"token"`
	Sites []*site.Site `json:"sites"`
}

type RepositoryAPI interface {
	// FindAll returns non-admin users ordered by creation time descending.
	FindAll(ctx context.Context, offset, limit int) ([]*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	// Create persists a new user; a duplicate username surfaces as the
	// conflict error regardless of any prior existence check.
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	// DeleteAllExceptAdmin physically removes every non-admin user and
	// reports how many rows went away.
	DeleteAllExceptAdmin(ctx context.Context) (int64, error)
}

type ServiceAPI interface {
	FindAll(ctx context.Context, offset, limit int) ([]*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, dto CreateUserDTO) (*User, error)
	Update(ctx context.Context, id string, dto UpdateUserDTO) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) (bool, error)
	Login(ctx context.Context, dto LoginDTO) (*LoginResult, error)
	FindOneByToken(ctx context.Context, token string) (*User, error)
	LockAndUnlockUser(ctx context.Context, id string) (bool, error)
}

// SiteResolver is the slice of the site service this package consumes.
type SiteResolver interface {
	FindByID(ctx context.Context, id string) (*site.Site, error)
	FindAllByIDs(ctx context.Context, ids []string) ([]*site.Site, error)
}

// PermissionStore is the slice of the permission service this package
// consumes.
type PermissionStore interface {
	Create(ctx context.Context, p *permission.UserPermission) error
	FindAllByUserID(ctx context.Context, userID string) ([]*permission.UserPermission, error)
}
