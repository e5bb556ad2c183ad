package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"alfredoptarigan/talent-pipeline/internal/models"
	"alfredoptarigan/talent-pipeline/internal/repositories"
)

type RankingService interface {
	GetCandidateRanking(ctx context.Context, positionID int) ([]models.CandidateRankEntry, error)
}

type rankingService struct {
	repo repositories.PipelineRepository
}

func NewRankingService(repo repositories.PipelineRepository) RankingService {
	return &rankingService{repo: repo}
}

// GetCandidateRanking returns (nil, nil) for an unknown position and a
// non-nil, possibly empty, slice otherwise.
func (s *rankingService) GetCandidateRanking(ctx context.Context, positionID int) ([]models.CandidateRankEntry, error) {
	ctx, span := tracer.Start(ctx, "ranking.get")
	defer span.End()
	span.SetAttributes(attribute.Int("position.id", positionID))

	if _, err := s.repo.FindPositionByID(ctx, positionID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, recordFailure(span, infrastructure("find position", err))
	}

	apps, err := s.repo.FindApplicationsByPosition(ctx, positionID)
	if err != nil {
		return nil, recordFailure(span, infrastructure("find applications", err))
	}

	entries := make([]models.CandidateRankEntry, 0, len(apps))
	for _, app := range apps {
		entries = append(entries, rankEntry(app))
	}
	sortRanking(entries)

	span.SetAttributes(attribute.Int("ranking.size", len(entries)))
	return entries, nil
}

func rankEntry(app models.Application) models.CandidateRankEntry {
	entry := models.CandidateRankEntry{
		ApplicationID:        app.ID,
		CandidateID:          app.CandidateID,
		FullName:             app.Candidate.FullName(),
		CurrentInterviewStep: app.CurrentInterviewStep,
		AverageScore:         averageScore(app.Interviews),
	}
	if last, ok := lastInterviewDate(app.Interviews); ok {
		formatted := last.UTC().Format(models.ISOTimeLayout)
		entry.LastInterviewDate = &formatted
	}
	return entry
}

// averageScore is the mean of the non-null scores, or nil when none exist.
func averageScore(interviews []models.Interview) *float64 {
	var sum float64
	var count int
	for _, iv := range interviews {
		if iv.Score == nil {
			continue
		}
		sum += *iv.Score
		count++
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}

func lastInterviewDate(interviews []models.Interview) (time.Time, bool) {
	var last time.Time
	found := false
	for _, iv := range interviews {
		if !found || iv.InterviewDate.After(last) {
			last = iv.InterviewDate
			found = true
		}
	}
	return last, found
}

// sortRanking orders by current step ascending, then average score
// descending with nil averages last. Ties keep their input order.
func sortRanking(entries []models.CandidateRankEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.CurrentInterviewStep != b.CurrentInterviewStep {
			return a.CurrentInterviewStep < b.CurrentInterviewStep
		}
		switch {
		case a.AverageScore == nil:
			return false
		case b.AverageScore == nil:
			return true
		default:
			return *a.AverageScore > *b.AverageScore
		}
	})
}
