package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/frahmantamala/user-management/internal"
	userDatamodel "github.com/frahmantamala/user-management/internal/core/datamodel/user"
	"github.com/frahmantamala/user-management/internal/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindAll(ctx context.Context, offset, limit int) ([]*user.User, error) {
	var records []userDatamodel.User
	if err := r.db.WithContext(ctx).
		Where("username <> ?", user.AdminUsername).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(records))
	for i := range records {
		users = append(users, fromDataModel(&records[i]))
	}
	return users, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*user.User, error) {
	var record userDatamodel.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return fromDataModel(&record), nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var record userDatamodel.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return fromDataModel(&record), nil
}

func (r *Repository) Create(ctx context.Context, u *user.User) error {
	record := &userDatamodel.User{
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		IsActive:     u.IsActive,
		IsLocked:     u.IsLocked,
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueViolation(err) {
			return internal.ErrUsernameConflict
		}
		return err
	}

	u.ID = record.ID
	u.CreatedAt = record.CreatedAt
	u.UpdatedAt = record.UpdatedAt
	return nil
}

func (r *Repository) Save(ctx context.Context, u *user.User) error {
	record := &userDatamodel.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		FullName:     u.FullName,
		IsActive:     u.IsActive,
		IsLocked:     u.IsLocked,
		CreatedAt:    u.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return err
	}

	u.UpdatedAt = record.UpdatedAt
	return nil
}

func (r *Repository) DeleteAllExceptAdmin(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("username <> ?", user.AdminUsername).
		Delete(&userDatamodel.User{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// isUniqueViolation recognizes the store-level uniqueness constraint firing,
// across the postgres and sqlite drivers.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

func fromDataModel(record *userDatamodel.User) *user.User {
	return &user.User{
		ID:           record.ID,
		Username:     record.Username,
		PasswordHash: record.PasswordHash,
		FullName:     record.FullName,
		IsActive:     record.IsActive,
		IsLocked:     record.IsLocked,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}
