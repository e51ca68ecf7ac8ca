package postgres

import (
	"context"

	"gorm.io/gorm"

	permissionDatamodel "github.com/frahmantamala/user-management/internal/core/datamodel/permission"
	"github.com/frahmantamala/user-management/internal/permission"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *permission.UserPermission) error {
	record := &permissionDatamodel.UserPermission{
		UserID:      p.UserID,
		SiteID:      p.SiteID,
		Permissions: p.Permissions,
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return err
	}

	p.ID = record.ID
	p.CreatedAt = record.CreatedAt
	return nil
}

func (r *Repository) FindAllByUserID(ctx context.Context, userID string) ([]*permission.UserPermission, error) {
	var records []permissionDatamodel.UserPermission
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	perms := make([]*permission.UserPermission, 0, len(records))
	for i := range records {
		perms = append(perms, fromDataModel(&records[i]))
	}
	return perms, nil
}

func fromDataModel(record *permissionDatamodel.UserPermission) *permission.UserPermission {
	return &permission.UserPermission{
		ID:          record.ID,
		UserID:      record.UserID,
		SiteID:      record.SiteID,
		Permissions: record.Permissions,
		CreatedAt:   record.CreatedAt,
	}
}
