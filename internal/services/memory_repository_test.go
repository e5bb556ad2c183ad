package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"alfredoptarigan/talent-pipeline/internal/models"
	"alfredoptarigan/talent-pipeline/internal/repositories"
)

// memoryRepository is an in-memory PipelineRepository. Transactions stage
// writes on copies and only publish them when the callback succeeds.
type memoryRepository struct {
	mu           sync.Mutex
	applications map[int]models.Application
	positions    map[int]models.Position
	steps        map[int]models.InterviewStep
	candidates   map[int]models.Candidate
	interviews   []models.Interview

	lookupErr          error
	createInterviewErr error
	txCalls            int
	nextInterviewID    int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		applications:    map[int]models.Application{},
		positions:       map[int]models.Position{},
		steps:           map[int]models.InterviewStep{},
		candidates:      map[int]models.Candidate{},
		nextInterviewID: 1,
	}
}

func (m *memoryRepository) addApplication(app models.Application) {
	m.applications[app.ID] = app
}

func (m *memoryRepository) addPosition(id, flowID int) {
	m.positions[id] = models.Position{ID: id, InterviewFlowID: flowID}
}

func (m *memoryRepository) addStep(id, flowID int) {
	m.steps[id] = models.InterviewStep{ID: id, InterviewFlowID: flowID}
}

func (m *memoryRepository) addCandidate(id int, first, last string) {
	m.candidates[id] = models.Candidate{ID: id, FirstName: first, LastName: last}
}

func (m *memoryRepository) addInterview(iv models.Interview) {
	iv.ID = m.nextInterviewID
	m.nextInterviewID++
	m.interviews = append(m.interviews, iv)
}

func (m *memoryRepository) FindApplicationByID(_ context.Context, id int) (*models.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	app, ok := m.applications[id]
	if !ok {
		return nil, fmt.Errorf("application %d: %w", id, repositories.ErrNotFound)
	}
	return &app, nil
}

func (m *memoryRepository) FindPositionByID(_ context.Context, id int) (*models.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	position, ok := m.positions[id]
	if !ok {
		return nil, fmt.Errorf("position %d: %w", id, repositories.ErrNotFound)
	}
	return &position, nil
}

func (m *memoryRepository) FindInterviewStepByID(_ context.Context, id int) (*models.InterviewStep, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	step, ok := m.steps[id]
	if !ok {
		return nil, fmt.Errorf("interview step %d: %w", id, repositories.ErrNotFound)
	}
	return &step, nil
}

func (m *memoryRepository) FindCandidateByID(_ context.Context, id int) (*models.Candidate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	candidate, ok := m.candidates[id]
	if !ok {
		return nil, fmt.Errorf("candidate %d: %w", id, repositories.ErrNotFound)
	}
	return &candidate, nil
}

func (m *memoryRepository) FindApplicationsByPosition(_ context.Context, positionID int) ([]models.Application, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}

	var apps []models.Application
	for _, app := range m.applications {
		if app.PositionID != positionID {
			continue
		}
		app.Candidate = m.candidates[app.CandidateID]
		for _, iv := range m.interviews {
			if iv.ApplicationID == app.ID {
				app.Interviews = append(app.Interviews, iv)
			}
		}
		apps = append(apps, app)
	}
	sort.Slice(apps, func(i, j int) bool { return apps[i].ID < apps[j].ID })
	return apps, nil
}

func (m *memoryRepository) WithTransaction(_ context.Context, fn func(tx repositories.PipelineTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txCalls++

	tx := &memoryTx{
		repo:         m,
		applications: make(map[int]models.Application, len(m.applications)),
		interviews:   append([]models.Interview(nil), m.interviews...),
		nextID:       m.nextInterviewID,
	}
	for id, app := range m.applications {
		tx.applications[id] = app
	}

	if err := fn(tx); err != nil {
		return err
	}

	m.applications = tx.applications
	m.interviews = tx.interviews
	m.nextInterviewID = tx.nextID
	return nil
}

func (m *memoryRepository) interviewCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.interviews)
}

type memoryTx struct {
	repo         *memoryRepository
	applications map[int]models.Application
	interviews   []models.Interview
	nextID       int
}

func (t *memoryTx) UpdateApplicationStep(_ context.Context, applicationID, stepID int) (*models.Application, error) {
	app, ok := t.applications[applicationID]
	if !ok {
		return nil, fmt.Errorf("application %d: %w", applicationID, repositories.ErrNotFound)
	}
	app.CurrentInterviewStep = stepID
	t.applications[applicationID] = app
	return &app, nil
}

func (t *memoryTx) CreateInterview(_ context.Context, interview *models.Interview) error {
	if t.repo.createInterviewErr != nil {
		return t.repo.createInterviewErr
	}
	interview.ID = t.nextID
	t.nextID++
	t.interviews = append(t.interviews, *interview)
	return nil
}
