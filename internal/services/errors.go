package services

import (
	"errors"
	"fmt"
)

// ErrOwnershipMismatch indicates the application belongs to another candidate.
type ErrOwnershipMismatch struct {
	ApplicationID      int
	CandidateID        int
	ApplicationOwnerID int
}

func (e *ErrOwnershipMismatch) Error() string {
	return "Application does not belong to the specified candidate"
}

// ErrStepNotFound indicates the target interview step does not exist.
type ErrStepNotFound struct {
	StepID int
}

func (e *ErrStepNotFound) Error() string {
	return "Interview step not found"
}

// ErrPositionNotFound indicates an application references a missing position.
type ErrPositionNotFound struct {
	ApplicationID int
	PositionID    int
}

func (e *ErrPositionNotFound) Error() string {
	return "Position not found"
}

// ErrStepFlowMismatch indicates the step belongs to a different interview
// flow than the one governing the position.
type ErrStepFlowMismatch struct {
	StepID         int
	StepFlowID     int
	PositionID     int
	PositionFlowID int
}

func (e *ErrStepFlowMismatch) Error() string {
	return "Invalid interview step for this flow"
}

// ErrInfrastructure wraps store failures. Its message is for logs only.
type ErrInfrastructure struct {
	Op  string
	Err error
}

func (e *ErrInfrastructure) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ErrInfrastructure) Unwrap() error {
	return e.Err
}

func infrastructure(op string, err error) error {
	return &ErrInfrastructure{Op: op, Err: err}
}

// IsValidationError reports whether err is one of the request validation
// failures raised by the stage service.
func IsValidationError(err error) bool {
	var (
		ownership *ErrOwnershipMismatch
		step      *ErrStepNotFound
		position  *ErrPositionNotFound
		flow      *ErrStepFlowMismatch
	)
	return errors.As(err, &ownership) ||
		errors.As(err, &step) ||
		errors.As(err, &position) ||
		errors.As(err, &flow)
}
