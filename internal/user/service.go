package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/auth"
	"github.com/frahmantamala/user-management/internal/permission"
	"github.com/frahmantamala/user-management/pkg/cache"
)

const (
	listCachePrefix = "users:list:"
	listCacheTTL    = time.Minute
)

// Service implements the user-management operations. It composes the
// repository with the site and permission services and the token manager.
type Service struct {
	repo        RepositoryAPI
	sites       SiteResolver
	permissions PermissionStore
	tokens      auth.TokenManagerAPI
	cache       *cache.Client
	security    internal.SecurityConfig
	logger      *slog.Logger
}

func NewService(
	repo RepositoryAPI,
	sites SiteResolver,
	permissions PermissionStore,
	tokens auth.TokenManagerAPI,
	cacheClient *cache.Client,
	security internal.SecurityConfig,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:        repo,
		sites:       sites,
		permissions: permissions,
		tokens:      tokens,
		cache:       cacheClient,
		security:    security,
		logger:      logger,
	}
}

// FindAll lists non-admin users newest first. An empty page is signalled as
// the no-content error rather than an empty success. Pages may be served from
// cache, so freshness is not guaranteed bit-exact with the latest writes.
func (s *Service) FindAll(ctx context.Context, offset, limit int) ([]*User, error) {
	key := fmt.Sprintf("%s%d:%d", listCachePrefix, offset, limit)

	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []*User
		if err := json.Unmarshal(data, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	users, err := s.repo.FindAll(ctx, offset, limit)
	if err != nil {
		s.logger.Error("failed to list users", "offset", offset, "limit", limit, "error", err)
		return nil, fmt.Errorf("list users: %w", err)
	}

	if len(users) == 0 {
		return nil, internal.ErrNoUsers
	}

	if payload, err := json.Marshal(users); err == nil {
		_ = s.cache.Set(ctx, key, payload, listCacheTTL)
	}
	return users, nil
}

func (s *Service) FindByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}
	return u, nil
}

// Create registers a new account and attaches the requested site
// permissions. The per-site batch runs concurrently but is awaited: a
// failure in any site check or permission insert fails the whole call.
// Returns the created user.
func (s *Service) Create(ctx context.Context, dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	// Fast path; the unique index on username is the real guard against a
	// concurrent create slipping past this check.
	if _, err := s.repo.FindByUsername(ctx, dto.Username); err == nil {
		return nil, internal.ErrUsernameConflict
	} else if !errors.Is(err, internal.ErrUserNotFound) {
		return nil, fmt.Errorf("check username %s: %w", dto.Username, err)
	}

	hash, err := auth.HashPassword(dto.Password, s.security.BCryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Username:     dto.Username,
		PasswordHash: hash,
		FullName:     dto.FullName,
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, internal.ErrUsernameConflict) {
			return nil, internal.ErrUsernameConflict
		}
		s.logger.Error("failed to create user", "username", dto.Username, "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.attachSites(ctx, u.ID, dto.Sites); err != nil {
		return nil, err
	}

	_ = s.cache.DeleteByPrefix(ctx, listCachePrefix)

	s.logger.Info("user created", "user_id", u.ID, "username", u.Username, "sites", len(dto.Sites))
	return u, nil
}

func (s *Service) Update(ctx context.Context, id string, dto UpdateUserDTO) (bool, error) {
	if err := dto.Validate(); err != nil {
		return false, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return false, internal.ErrUserNotFound
		}
		return false, fmt.Errorf("find user %s: %w", id, err)
	}

	u.FullName = dto.FullName
	if err := s.repo.Save(ctx, u); err != nil {
		s.logger.Error("failed to update user", "user_id", id, "error", err)
		return false, fmt.Errorf("save user: %w", err)
	}

	if err := s.attachSites(ctx, u.ID, dto.Sites); err != nil {
		return false, err
	}

	_ = s.cache.DeleteByPrefix(ctx, listCachePrefix)

	s.logger.Info("user updated", "user_id", id, "sites", len(dto.Sites))
	return true, nil
}

// Delete soft-deletes: the record stays queryable by id but is marked
// inactive. There is no operation that reactivates an account.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return false, internal.ErrUserNotFound
		}
		return false, fmt.Errorf("find user %s: %w", id, err)
	}

	u.IsActive = false
	if err := s.repo.Save(ctx, u); err != nil {
		s.logger.Error("failed to soft-delete user", "user_id", id, "error", err)
		return false, fmt.Errorf("save user: %w", err)
	}

	_ = s.cache.DeleteByPrefix(ctx, listCachePrefix)

	s.logger.Info("user soft-deleted", "user_id", id)
	return true, nil
}

// DeleteAll physically removes every non-admin user. True means the store
// call succeeded, not that any particular number of rows were removed.
func (s *Service) DeleteAll(ctx context.Context) (bool, error) {
	count, err := s.repo.DeleteAllExceptAdmin(ctx)
	if err != nil {
		s.logger.Error("failed to bulk-delete users", "error", err)
		return false, fmt.Errorf("bulk delete users: %w", err)
	}

	_ = s.cache.DeleteByPrefix(ctx, listCachePrefix)

	s.logger.Info("bulk-deleted users", "count", count)
	return true, nil
}

// Login checks credentials and issues a signed token. Unknown username and
// wrong password fail identically so callers cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, dto.Username)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return nil, internal.ErrUnauthorized
		}
		return nil, fmt.Errorf("find user %s: %w", dto.Username, err)
	}

	if err := auth.VerifyPassword(u.PasswordHash, dto.Password); err != nil {
		return nil, internal.ErrUnauthorized
	}

	if s.security.EnforceLockOnLogin && u.IsLocked {
		s.logger.Warn("login rejected for locked account", "user_id", u.ID)
		return nil, internal.ErrUnauthorized
	}

	token, err := s.tokens.Generate(u.ID, u.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	perms, err := s.permissions.FindAllByUserID(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("load permissions for user %s: %w", u.ID, err)
	}

	siteIDs := collectSiteIDs(perms)
	sites, err := s.sites.FindAllByIDs(ctx, siteIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve sites for user %s: %w", u.ID, err)
	}

	s.logger.Info("user logged in", "user_id", u.ID, "sites", len(sites))
	return &LoginResult{Token: token, Sites: sites}, nil
}

// FindOneByToken verifies the token and resolves its subject. A valid token
// whose subject no longer exists fails with not-found, symmetric with the
// other lookups.
func (s *Service) FindOneByToken(ctx context.Context, token string) (*User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, internal.ErrInvalidToken
	}

	u, err := s.repo.FindByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by token subject: %w", err)
	}
	return u, nil
}

// LockAndUnlockUser toggles the lock flag: two calls restore the original
// state.
func (s *Service) LockAndUnlockUser(ctx context.Context, id string) (bool, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, internal.ErrUserNotFound) {
			return false, internal.ErrUserNotFound
		}
		return false, fmt.Errorf("find user %s: %w", id, err)
	}

	u.IsLocked = !u.IsLocked
	if err := s.repo.Save(ctx, u); err != nil {
		s.logger.Error("failed to toggle lock", "user_id", id, "error", err)
		return false, fmt.Errorf("save user: %w", err)
	}

	s.logger.Info("user lock toggled", "user_id", id, "is_locked", u.IsLocked)
	return true, nil
}

// attachSites validates each referenced site and writes the permission rows.
// The entries run concurrently and the whole batch is awaited before the
// caller returns; failures are aggregated into the returned error.
func (s *Service) attachSites(ctx context.Context, userID string, sites []SitePermissionDTO) error {
	if len(sites) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, entry := range sites {
		entry := entry
		g.Go(func() error {
			if _, err := s.sites.FindByID(gctx, entry.SiteID); err != nil {
				return err
			}
			return s.permissions.Create(gctx, &permission.UserPermission{
				UserID:      userID,
				SiteID:      entry.SiteID,
				Permissions: entry.Permissions,
			})
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to attach site permissions", "user_id", userID, "error", err)
		return err
	}
	return nil
}

func collectSiteIDs(perms []*permission.UserPermission) []string {
	seen := make(map[string]struct{}, len(perms))
	ids := make([]string, 0, len(perms))
	for _, p := range perms {
		if _, ok := seen[p.SiteID]; ok {
			continue
		}
		seen[p.SiteID] = struct{}{}
		ids = append(ids, p.SiteID)
	}
	return ids
}
