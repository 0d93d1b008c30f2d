package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/riya0701/AI-Placement-Advisor/internal/models"
)

type CatalogRepository interface {
	FindAll() ([]models.RoleCatalogEntry, error)
	Count() (int64, error)
	Seed(entries []models.RoleCatalogEntry) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// FindAll implements CatalogRepository. Entries come back in their
// original catalog order.
func (c *catalogRepository) FindAll() ([]models.RoleCatalogEntry, error) {
	var entries []models.RoleCatalogEntry
	if err := c.db.Order("position asc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to load role catalog: %w", err)
	}

	return entries, nil
}

// Count implements CatalogRepository.
func (c *catalogRepository) Count() (int64, error) {
	var count int64
	if err := c.db.Model(&models.RoleCatalogEntry{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count catalog entries: %w", err)
	}

	return count, nil
}

// Seed implements CatalogRepository. Used once at startup to populate an
// empty catalog table from the CSV source.
func (c *catalogRepository) Seed(entries []models.RoleCatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := c.db.Create(&entries).Error; err != nil {
		return fmt.Errorf("failed to seed role catalog: %w", err)
	}

	return nil
}
