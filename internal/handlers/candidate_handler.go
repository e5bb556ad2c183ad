package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/talent-pipeline/internal/models"
	"alfredoptarigan/talent-pipeline/internal/services"
)

type CandidateHandler struct {
	stageService services.StageService
}

func NewCandidateHandler(stageService services.StageService) *CandidateHandler {
	return &CandidateHandler{
		stageService: stageService,
	}
}

// HandleMoveStage handles PUT /candidates/:id/stage
func (h *CandidateHandler) HandleMoveStage(c *fiber.Ctx) error {
	candidateID, err := c.ParamsInt("id")
	if err != nil || candidateID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	var req models.MoveStageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "applicationId and newStepId are required",
		})
	}

	transition, err := h.stageService.MoveApplicationStage(c.UserContext(), services.MoveStageInput{
		ApplicationID: req.ApplicationID,
		CandidateID:   candidateID,
		NewStepID:     req.NewStepID,
		PerformedBy:   req.PerformedBy,
		Note:          req.Note,
	})
	if err != nil {
		return respondError(c, "move application stage", err)
	}

	if transition == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Application not found",
		})
	}

	app := transition.Application
	return c.JSON(models.MoveStageResponse{
		ApplicationID: app.ID,
		CandidateID:   app.CandidateID,
		PreviousStep:  transition.PreviousStep,
		CurrentStep:   app.CurrentInterviewStep,
		UpdatedAt:     app.UpdatedAt.UTC().Format(models.ISOTimeLayout),
	})
}
