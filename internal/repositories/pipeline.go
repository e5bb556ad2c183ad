package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"alfredoptarigan/talent-pipeline/internal/models"
)

// ErrNotFound is wrapped by every lookup that finds no row.
var ErrNotFound = errors.New("record not found")

// PipelineRepository is the data access gateway used by the stage and
// ranking services.
type PipelineRepository interface {
	FindApplicationByID(ctx context.Context, id int) (*models.Application, error)
	FindPositionByID(ctx context.Context, id int) (*models.Position, error)
	FindInterviewStepByID(ctx context.Context, id int) (*models.InterviewStep, error)
	FindCandidateByID(ctx context.Context, id int) (*models.Candidate, error)
	FindApplicationsByPosition(ctx context.Context, positionID int) ([]models.Application, error)

	// WithTransaction runs fn in a single database transaction. Any error
	// returned by fn, or a panic inside it, rolls back every write.
	WithTransaction(ctx context.Context, fn func(tx PipelineTx) error) error
}

// PipelineTx exposes the writes allowed inside WithTransaction.
type PipelineTx interface {
	UpdateApplicationStep(ctx context.Context, applicationID, stepID int) (*models.Application, error)
	CreateInterview(ctx context.Context, interview *models.Interview) error
}

type pipelineRepository struct {
	db *gorm.DB
}

func NewPipelineRepository(db *gorm.DB) PipelineRepository {
	return &pipelineRepository{db: db}
}

// FindApplicationByID implements PipelineRepository.
func (r *pipelineRepository) FindApplicationByID(ctx context.Context, id int) (*models.Application, error) {
	var app models.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error; err != nil {
		return nil, lookupError("application", id, err)
	}
	return &app, nil
}

// FindPositionByID implements PipelineRepository.
func (r *pipelineRepository) FindPositionByID(ctx context.Context, id int) (*models.Position, error) {
	var position models.Position
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&position).Error; err != nil {
		return nil, lookupError("position", id, err)
	}
	return &position, nil
}

// FindInterviewStepByID implements PipelineRepository.
func (r *pipelineRepository) FindInterviewStepByID(ctx context.Context, id int) (*models.InterviewStep, error) {
	var step models.InterviewStep
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&step).Error; err != nil {
		return nil, lookupError("interview step", id, err)
	}
	return &step, nil
}

// FindCandidateByID implements PipelineRepository.
func (r *pipelineRepository) FindCandidateByID(ctx context.Context, id int) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&candidate).Error; err != nil {
		return nil, lookupError("candidate", id, err)
	}
	return &candidate, nil
}

// FindApplicationsByPosition loads every application of a position with its
// candidate and interview history.
func (r *pipelineRepository) FindApplicationsByPosition(ctx context.Context, positionID int) ([]models.Application, error) {
	var apps []models.Application
	err := r.db.WithContext(ctx).
		Preload("Candidate").
		Preload("Interviews", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "application_id", "score", "interview_date").Order("id ASC")
		}).
		Where("position_id = ?", positionID).
		Order("id ASC").
		Find(&apps).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find applications for position %d: %w", positionID, err)
	}

	return apps, nil
}

// WithTransaction implements PipelineRepository.
func (r *pipelineRepository) WithTransaction(ctx context.Context, fn func(tx PipelineTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&pipelineTx{db: tx})
	})
}

type pipelineTx struct {
	db *gorm.DB
}

// UpdateApplicationStep implements PipelineTx.
func (t *pipelineTx) UpdateApplicationStep(ctx context.Context, applicationID, stepID int) (*models.Application, error) {
	result := t.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", applicationID).
		Updates(map[string]interface{}{
			"current_interview_step": stepID,
			"updated_at":             time.Now(),
		})

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update application step: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("application %d: %w", applicationID, ErrNotFound)
	}

	var app models.Application
	if err := t.db.WithContext(ctx).Where("id = ?", applicationID).First(&app).Error; err != nil {
		return nil, lookupError("application", applicationID, err)
	}

	return &app, nil
}

// CreateInterview implements PipelineTx.
func (t *pipelineTx) CreateInterview(ctx context.Context, interview *models.Interview) error {
	if err := t.db.WithContext(ctx).Create(interview).Error; err != nil {
		return fmt.Errorf("failed to create interview: %w", err)
	}
	return nil
}

func lookupError(entity string, id int, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
	}
	return fmt.Errorf("failed to find %s: %w", entity, err)
}
