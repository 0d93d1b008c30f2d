package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/riya0701/AI-Placement-Advisor/internal/models"
	"github.com/riya0701/AI-Placement-Advisor/internal/services"
)

// topRoleCount limits how many roles the response highlights; the full
// ranking is still included for chart-style display.
const topRoleCount = 3

type RecommendHandler struct {
	matcherService services.MatcherService
	catalog        []models.RoleCatalogEntry
}

func NewRecommendHandler(
	matcherService services.MatcherService,
	catalog []models.RoleCatalogEntry,
) *RecommendHandler {
	return &RecommendHandler{
		matcherService: matcherService,
		catalog:        catalog,
	}
}

// HandleRecommend handles POST /recommend
func (h *RecommendHandler) HandleRecommend(c *fiber.Ctx) error {
	var profile models.CandidateProfile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	result, err := h.matcherService.Match(profile, h.catalog)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidProfile):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Skills are blank. Add at least one skill before requesting a recommendation.",
			})
		case errors.Is(err, services.ErrEmptyCatalog):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "Role catalog is not loaded",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to compute recommendation",
			})
		}
	}

	top := result.RankedRoles
	if len(top) > topRoleCount {
		top = top[:topRoleCount]
	}

	return c.JSON(models.RecommendResponse{
		TopRoles:       top,
		RankedRoles:    result.RankedRoles,
		TopRole:        result.TopRole,
		MissingSkills:  result.MissingSkills,
		FullyQualified: result.FullyQualified,
	})
}
