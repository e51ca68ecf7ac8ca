package permission

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPermission links a user to a site with a set of permission names.
// Rows are append-only from this service: no update or delete surface.
type UserPermission struct {
	ID          string    `gorm:"primaryKey;column:id"`
	UserID      string    `gorm:"column:user_id;index;not null"`
	SiteID      string    `gorm:"column:site_id;not null"`
	Permissions []string  `gorm:"column:permissions;serializer:json"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (UserPermission) TableName() string {
	return "user_permissions"
}

func (p *UserPermission) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
