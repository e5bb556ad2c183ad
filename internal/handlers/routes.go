package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, candidates *CandidateHandler, positions *PositionHandler) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	app.Put("/candidates/:id/stage", candidates.HandleMoveStage)
	app.Get("/positions/:id/candidates", positions.HandleGetCandidates)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Talent Pipeline API",
			"version": "1.0.0",
			"endpoints": []string{
				"PUT /candidates/:id/stage",
				"GET /positions/:id/candidates",
			},
		})
	})
}
