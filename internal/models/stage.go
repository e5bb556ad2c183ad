package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type MoveStageRequest struct {
	ApplicationID int     `json:"applicationId" validate:"required,gt=0"`
	NewStepID     int     `json:"newStepId" validate:"required,gt=0"`
	PerformedBy   *int    `json:"performedBy,omitempty" validate:"omitempty,gt=0"`
	Note          *string `json:"note,omitempty"`
}

// Validate validates the MoveStageRequest using the validator.
func (r *MoveStageRequest) Validate() error {
	return validate.Struct(r)
}

type MoveStageResponse struct {
	ApplicationID int    `json:"applicationId"`
	CandidateID   int    `json:"candidateId"`
	PreviousStep  int    `json:"previousStep"`
	CurrentStep   int    `json:"currentStep"`
	UpdatedAt     string `json:"updatedAt"`
}
