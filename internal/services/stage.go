package services

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"alfredoptarigan/talent-pipeline/internal/models"
	"alfredoptarigan/talent-pipeline/internal/repositories"
)

type StageService interface {
	MoveApplicationStage(ctx context.Context, input MoveStageInput) (*StageTransition, error)
}

type MoveStageInput struct {
	ApplicationID int
	CandidateID   int
	NewStepID     int
	PerformedBy   *int
	Note          *string
}

// StageTransition is the committed result of a stage move.
type StageTransition struct {
	Application   *models.Application
	PreviousStep  int
	AuditRecorded bool
}

type stageService struct {
	repo repositories.PipelineRepository
	now  func() time.Time
}

func NewStageService(repo repositories.PipelineRepository) StageService {
	return &stageService{
		repo: repo,
		now:  time.Now,
	}
}

// MoveApplicationStage validates the move against the position's interview
// flow and then updates the application and appends the audit interview in
// one transaction. A missing application yields (nil, nil).
func (s *stageService) MoveApplicationStage(ctx context.Context, input MoveStageInput) (*StageTransition, error) {
	ctx, span := tracer.Start(ctx, "stage.move")
	defer span.End()
	span.SetAttributes(
		attribute.Int("application.id", input.ApplicationID),
		attribute.Int("candidate.id", input.CandidateID),
		attribute.Int("step.id", input.NewStepID),
	)

	transition, err := s.move(ctx, input)
	if err != nil {
		return nil, recordFailure(span, err)
	}
	return transition, nil
}

func (s *stageService) move(ctx context.Context, input MoveStageInput) (*StageTransition, error) {
	app, err := s.repo.FindApplicationByID(ctx, input.ApplicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, infrastructure("find application", err)
	}

	if app.CandidateID != input.CandidateID {
		return nil, &ErrOwnershipMismatch{
			ApplicationID:      app.ID,
			CandidateID:        input.CandidateID,
			ApplicationOwnerID: app.CandidateID,
		}
	}

	step, err := s.repo.FindInterviewStepByID(ctx, input.NewStepID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &ErrStepNotFound{StepID: input.NewStepID}
		}
		return nil, infrastructure("find interview step", err)
	}

	position, err := s.repo.FindPositionByID(ctx, app.PositionID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &ErrPositionNotFound{ApplicationID: app.ID, PositionID: app.PositionID}
		}
		return nil, infrastructure("find position", err)
	}

	if position.InterviewFlowID != step.InterviewFlowID {
		return nil, &ErrStepFlowMismatch{
			StepID:         step.ID,
			StepFlowID:     step.InterviewFlowID,
			PositionID:     position.ID,
			PositionFlowID: position.InterviewFlowID,
		}
	}

	audit := auditInterview(input, s.now())
	transition := &StageTransition{
		PreviousStep:  app.CurrentInterviewStep,
		AuditRecorded: audit != nil,
	}

	err = s.repo.WithTransaction(ctx, func(tx repositories.PipelineTx) error {
		updated, err := tx.UpdateApplicationStep(ctx, input.ApplicationID, input.NewStepID)
		if err != nil {
			return err
		}
		if audit != nil {
			if err := tx.CreateInterview(ctx, audit); err != nil {
				return err
			}
		}
		transition.Application = updated
		return nil
	})
	if err != nil {
		return nil, infrastructure("move application stage", err)
	}

	return transition, nil
}

// auditInterview builds the history row for a move, or nil when the move
// carries neither a note nor a performer.
func auditInterview(input MoveStageInput, at time.Time) *models.Interview {
	var note *string
	if input.Note != nil && *input.Note != "" {
		note = input.Note
	}
	if note == nil && input.PerformedBy == nil {
		return nil
	}

	return &models.Interview{
		ApplicationID:   input.ApplicationID,
		InterviewStepID: input.NewStepID,
		EmployeeID:      input.PerformedBy,
		InterviewDate:   at,
		Notes:           note,
	}
}
