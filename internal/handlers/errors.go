package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/talent-pipeline/internal/services"
)

// respondError maps service errors onto HTTP responses. Validation failures
// pass their message through; anything else is logged with a reference id
// and answered with a generic body.
func respondError(c *fiber.Ctx, op string, err error) error {
	if services.IsValidationError(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	ref := uuid.New().String()
	log.Printf("❌ %s failed [ref=%s]: %v", op, ref, err)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":     "Internal Server Error",
		"reference": ref,
	})
}

// ErrorHandler renders errors that escape handlers, including recovered
// panics, in the same JSON shape.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("❌ Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
		"code":  code,
	})
}
