package analytics

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/Pawankumarhr/prime-trade/domain"
	"github.com/Pawankumarhr/prime-trade/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// Overview fetches the caller's full task collection and summarizes it as
// of today. Nothing is cached; every call reflects the live collection.
func (uc *UseCase) Overview(ctx context.Context, userID string) (domain.AnalyticsSummary, error) {
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID})
	if err != nil {
		return domain.AnalyticsSummary{}, err
	}
	return Summarize(tasks, domain.Today()), nil
}

// Summarize aggregates a task collection into the fixed metrics set in a
// single pass. Pure function of its inputs.
func Summarize(tasks []domain.Task, asOf domain.Date) domain.AnalyticsSummary {
	weekStart := asOf.WeekStart()

	summary := domain.AnalyticsSummary{TotalTasks: len(tasks)}

	for i := range tasks {
		t := &tasks[i]

		switch t.Status {
		case domain.StatusDone:
			summary.Statuses.Done++
		case domain.StatusInProgress:
			summary.Statuses.InProgress++
		case domain.StatusPending:
			summary.Statuses.Pending++
		}

		switch t.Priority {
		case domain.PriorityHigh:
			summary.Priorities.High++
		case domain.PriorityMedium:
			summary.Priorities.Medium++
		case domain.PriorityLow:
			summary.Priorities.Low++
		}

		// A task due exactly asOf is not overdue; the comparison is on
		// calendar dates, never timestamps.
		if t.DueDate != nil && t.Status != domain.StatusDone && t.DueDate.Before(asOf) {
			summary.Overdue++
		}

		if t.CompletedAt != nil {
			completed := domain.DateOf(*t.CompletedAt)
			if completed == asOf {
				summary.DoneToday++
			}
			if !completed.Before(weekStart) {
				summary.DoneThisWeek++
			}
		}
	}

	summary.CompletedTasks = summary.Statuses.Done
	summary.InProgress = summary.Statuses.InProgress
	summary.Pending = summary.Statuses.Pending

	if summary.TotalTasks > 0 {
		rate := float64(summary.CompletedTasks) / float64(summary.TotalTasks) * 100
		summary.CompletionRate = roundHalfUp(rate)
	}

	return summary
}

// roundHalfUp rounds to one decimal place, halves away from zero.
func roundHalfUp(value float64) float64 {
	return math.Floor(value*10+0.5) / 10
}
