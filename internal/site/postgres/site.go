package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/frahmantamala/user-management/internal"
	siteDatamodel "github.com/frahmantamala/user-management/internal/core/datamodel/site"
	"github.com/frahmantamala/user-management/internal/site"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, s *site.Site) error {
	record := &siteDatamodel.Site{
		Name: s.Name,
		URL:  s.URL,
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return err
	}

	s.ID = record.ID
	s.CreatedAt = record.CreatedAt
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*site.Site, error) {
	var record siteDatamodel.Site
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrSiteNotFound
		}
		return nil, err
	}
	return fromDataModel(&record), nil
}

func (r *Repository) FindAllByIDs(ctx context.Context, ids []string) ([]*site.Site, error) {
	var records []siteDatamodel.Site
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, err
	}
	return fromDataModels(records), nil
}

func (r *Repository) FindAll(ctx context.Context, offset, limit int) ([]*site.Site, error) {
	var records []siteDatamodel.Site
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return fromDataModels(records), nil
}

func fromDataModel(record *siteDatamodel.Site) *site.Site {
	return &site.Site{
		ID:        record.ID,
		Name:      record.Name,
		URL:       record.URL,
		CreatedAt: record.CreatedAt,
	}
}

func fromDataModels(records []siteDatamodel.Site) []*site.Site {
	sites := make([]*site.Site, 0, len(records))
	for i := range records {
		sites = append(sites, fromDataModel(&records[i]))
	}
	return sites
}
