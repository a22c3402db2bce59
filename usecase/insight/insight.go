package insight

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Pawankumarhr/prime-trade/domain"
	"github.com/Pawankumarhr/prime-trade/repository"
	"github.com/Pawankumarhr/prime-trade/usecase/analytics"
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

// Report fetches the caller's task collection once and derives both the
// summary and the insight report from it.
func (uc *UseCase) Report(ctx context.Context, userID string) (domain.InsightReport, error) {
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{UserID: userID})
	if err != nil {
		return domain.InsightReport{}, err
	}
	asOf := domain.Today()
	return Generate(analytics.Summarize(tasks, asOf), tasks, asOf), nil
}

// ruleResult is what a single rule contributes: one observation and,
// optionally, a suggestion overwriting whatever an earlier rule proposed.
type ruleResult struct {
	observation string
	suggestion  string
}

type rule func(domain.AnalyticsSummary) (ruleResult, bool)

// rules run in this fixed order. Observations accumulate; the suggestion
// slot is last-wins across applicable rules.
var rules = []rule{
	func(s domain.AnalyticsSummary) (ruleResult, bool) {
		if s.DoneThisWeek == 0 {
			return ruleResult{}, false
		}
		return ruleResult{
			observation: fmt.Sprintf("🎉 You completed %d tasks this week!", s.DoneThisWeek),
		}, true
	},
	func(s domain.AnalyticsSummary) (ruleResult, bool) {
		if s.Overdue == 0 {
			return ruleResult{}, false
		}
		return ruleResult{
			observation: fmt.Sprintf("⚠️ You have %d overdue tasks. Consider prioritizing them.", s.Overdue),
			suggestion:  "Focus on completing overdue tasks first to stay on track.",
		}, true
	},
	// Three-way exclusive completion-rate tier: at most one branch fires.
	func(s domain.AnalyticsSummary) (ruleResult, bool) {
		switch {
		case s.CompletionRate >= 70:
			return ruleResult{
				observation: fmt.Sprintf("🚀 Great job! Your completion rate is %.1f%%!", s.CompletionRate),
				suggestion:  "Keep up the momentum! You're doing great.",
			}, true
		case s.CompletionRate >= 50:
			return ruleResult{
				observation: fmt.Sprintf("💪 Keep going! Your completion rate is %.1f%%.", s.CompletionRate),
				suggestion:  "Try to complete a few more tasks to boost your productivity.",
			}, true
		case s.TotalTasks > 0:
			return ruleResult{
				observation: fmt.Sprintf("📈 Your completion rate is %.1f%%. Let's improve it!", s.CompletionRate),
				suggestion:  "Start with smaller tasks to build momentum.",
			}, true
		}
		return ruleResult{}, false
	},
	func(s domain.AnalyticsSummary) (ruleResult, bool) {
		if s.Priorities.High <= s.Priorities.Medium+s.Priorities.Low {
			return ruleResult{}, false
		}
		return ruleResult{
			observation: "🔥 Most of your tasks are high priority. You're ambitious!",
		}, true
	},
	func(s domain.AnalyticsSummary) (ruleResult, bool) {
		if s.DoneToday == 0 {
			return ruleResult{}, false
		}
		return ruleResult{
			observation: fmt.Sprintf("✅ You've completed %d tasks today!", s.DoneToday),
		}, true
	},
}

// Generate folds the rule list over the summary and derives due_this_week
// from the same task collection the summary was computed from.
func Generate(summary domain.AnalyticsSummary, tasks []domain.Task, asOf domain.Date) domain.InsightReport {
	var observations []string
	var suggestion string

	for _, r := range rules {
		result, applies := r(summary)
		if !applies {
			continue
		}
		observations = append(observations, result.observation)
		if result.suggestion != "" {
			suggestion = result.suggestion
		}
	}

	if len(observations) == 0 {
		observations = []string{"📝 Start adding tasks to see insights!"}
		suggestion = "Create your first task to get started!"
	}

	return domain.InsightReport{
		Insights:       observations,
		Suggestion:     suggestion,
		CompletionRate: summary.CompletionRate,
		OverdueCount:   summary.Overdue,
		DueThisWeek:    dueThisWeek(tasks, asOf),
	}
}

// dueThisWeek counts open tasks due in [asOf, Sunday of asOf's week].
func dueThisWeek(tasks []domain.Task, asOf domain.Date) int {
	weekEnd := asOf.WeekEnd()

	var count int
	for i := range tasks {
		t := &tasks[i]
		if t.DueDate == nil || t.Status == domain.StatusDone {
			continue
		}
		if !t.DueDate.Before(asOf) && !t.DueDate.After(weekEnd) {
			count++
		}
	}
	return count
}
