package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/riya0701/AI-Placement-Advisor/internal/models"
)

type CatalogHandler struct {
	catalog        []models.RoleCatalogEntry
	vocabularySize int
}

func NewCatalogHandler(catalog []models.RoleCatalogEntry, vocabularySize int) *CatalogHandler {
	return &CatalogHandler{
		catalog:        catalog,
		vocabularySize: vocabularySize,
	}
}

// HandleListRoles handles GET /roles
func (h *CatalogHandler) HandleListRoles(c *fiber.Ctx) error {
	return c.JSON(models.RoleListResponse{
		Roles:          h.catalog,
		VocabularySize: h.vocabularySize,
	})
}
