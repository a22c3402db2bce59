package analytics

import (
	"testing"
	"time"

	"github.com/Pawankumarhr/prime-trade/domain"
)

func datePtr(d domain.Date) *domain.Date {
	return &d
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestSummarize_MixedCollection(t *testing.T) {
	asOf := domain.NewDate(2025, time.June, 11) // Wednesday
	yesterday := asOf.AddDays(-1)
	completedToday := time.Date(2025, time.June, 11, 9, 30, 0, 0, time.UTC)

	tasks := []domain.Task{
		{Status: domain.StatusDone, Priority: domain.PriorityMedium, CompletedAt: timePtr(completedToday)},
		{Status: domain.StatusPending, Priority: domain.PriorityLow, DueDate: datePtr(yesterday)},
		{Status: domain.StatusInProgress, Priority: domain.PriorityHigh},
	}

	s := Summarize(tasks, asOf)

	if s.TotalTasks != 3 {
		t.Errorf("TotalTasks = %d, want 3", s.TotalTasks)
	}
	if s.CompletedTasks != 1 || s.Pending != 1 || s.InProgress != 1 {
		t.Errorf("status counts = done %d, pending %d, in-progress %d, want 1/1/1",
			s.CompletedTasks, s.Pending, s.InProgress)
	}
	if s.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", s.Overdue)
	}
	if s.DoneToday != 1 {
		t.Errorf("DoneToday = %d, want 1", s.DoneToday)
	}
	if s.DoneThisWeek != 1 {
		t.Errorf("DoneThisWeek = %d, want 1 (today's completion is part of the week)", s.DoneThisWeek)
	}
	if s.CompletionRate != 33.3 {
		t.Errorf("CompletionRate = %v, want 33.3", s.CompletionRate)
	}
	if s.Priorities != (domain.PriorityBreakdown{High: 1, Medium: 1, Low: 1}) {
		t.Errorf("Priorities = %+v", s.Priorities)
	}
	if s.Statuses != (domain.StatusBreakdown{Pending: 1, InProgress: 1, Done: 1}) {
		t.Errorf("Statuses = %+v", s.Statuses)
	}
}

func TestSummarize_EmptyCollection(t *testing.T) {
	s := Summarize(nil, domain.NewDate(2025, time.June, 11))

	if s != (domain.AnalyticsSummary{}) {
		t.Errorf("empty collection summary = %+v, want zero value", s)
	}
	if s.CompletionRate != 0 {
		t.Errorf("CompletionRate = %v, want 0", s.CompletionRate)
	}
}

func TestSummarize_OverdueBoundaries(t *testing.T) {
	asOf := domain.NewDate(2025, time.June, 11)

	tests := []struct {
		name string
		task domain.Task
		want int
	}{
		{
			name: "due exactly today is not overdue",
			task: domain.Task{Status: domain.StatusPending, DueDate: datePtr(asOf)},
			want: 0,
		},
		{
			name: "due yesterday and still open is overdue",
			task: domain.Task{Status: domain.StatusInProgress, DueDate: datePtr(asOf.AddDays(-1))},
			want: 1,
		},
		{
			name: "due yesterday but done is not overdue",
			task: domain.Task{Status: domain.StatusDone, DueDate: datePtr(asOf.AddDays(-1))},
			want: 0,
		},
		{
			name: "no due date is never overdue",
			task: domain.Task{Status: domain.StatusPending},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize([]domain.Task{tt.task}, asOf)
			if s.Overdue != tt.want {
				t.Errorf("Overdue = %d, want %d", s.Overdue, tt.want)
			}
		})
	}
}

func TestSummarize_WeekBoundaries(t *testing.T) {
	asOf := domain.NewDate(2025, time.June, 11) // Wednesday; week starts Monday June 9

	tests := []struct {
		name         string
		completedAt  time.Time
		wantThisWeek int
	}{
		{
			name:         "completed monday of this week counts",
			completedAt:  time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC),
			wantThisWeek: 1,
		},
		{
			name:         "completed sunday of last week does not count",
			completedAt:  time.Date(2025, time.June, 8, 23, 59, 59, 0, time.UTC),
			wantThisWeek: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := []domain.Task{
				{Status: domain.StatusDone, CompletedAt: timePtr(tt.completedAt)},
			}
			s := Summarize(tasks, asOf)
			if s.DoneThisWeek != tt.wantThisWeek {
				t.Errorf("DoneThisWeek = %d, want %d", s.DoneThisWeek, tt.wantThisWeek)
			}
		})
	}
}

func TestSummarize_CompletionRateRoundsHalfUp(t *testing.T) {
	asOf := domain.NewDate(2025, time.June, 11)

	tests := []struct {
		name  string
		done  int
		total int
		want  float64
	}{
		{name: "one third", done: 1, total: 3, want: 33.3},
		{name: "two thirds rounds up", done: 2, total: 3, want: 66.7},
		{name: "exact quarter", done: 3, total: 4, want: 75},
		{name: "one sixteenth rounds half up", done: 1, total: 16, want: 6.3},
		{name: "all done", done: 5, total: 5, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := make([]domain.Task, 0, tt.total)
			for i := 0; i < tt.done; i++ {
				tasks = append(tasks, domain.Task{Status: domain.StatusDone})
			}
			for i := tt.done; i < tt.total; i++ {
				tasks = append(tasks, domain.Task{Status: domain.StatusPending})
			}

			s := Summarize(tasks, asOf)
			if s.CompletionRate != tt.want {
				t.Errorf("CompletionRate = %v, want %v", s.CompletionRate, tt.want)
			}
		})
	}
}
