package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/talent-pipeline/internal/services"
)

type PositionHandler struct {
	rankingService services.RankingService
}

func NewPositionHandler(rankingService services.RankingService) *PositionHandler {
	return &PositionHandler{
		rankingService: rankingService,
	}
}

// HandleGetCandidates handles GET /positions/:id/candidates
func (h *PositionHandler) HandleGetCandidates(c *fiber.Ctx) error {
	positionID, err := c.ParamsInt("id")
	if err != nil || positionID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid ID format",
		})
	}

	ranking, err := h.rankingService.GetCandidateRanking(c.UserContext(), positionID)
	if err != nil {
		return respondError(c, "get candidate ranking", err)
	}

	if ranking == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Position not found",
		})
	}

	return c.JSON(ranking)
}
