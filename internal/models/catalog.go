package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleCatalogEntry is one job role the advisor can recommend. The catalog
// is loaded once at startup and never mutated for the process lifetime.
type RoleCatalogEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Position       int       `gorm:"not null;uniqueIndex" json:"-"`
	RoleName       string    `gorm:"type:text;not null;uniqueIndex" json:"role_name"`
	RequiredSkills string    `gorm:"type:text;not null" json:"required_skills"`
	CreatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"-"`
	UpdatedAt      time.Time `gorm:"type:timestamp;default:now()" json:"-"`
}

func (RoleCatalogEntry) TableName() string {
	return "job_roles"
}
