package domain

// StatusBreakdown groups task counts by lifecycle state.
type StatusBreakdown struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in-progress"`
	Done       int `json:"done"`
}

// PriorityBreakdown groups task counts by urgency level.
type PriorityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// AnalyticsSummary is recomputed from the live task collection on every
// request; it is never persisted or cached.
type AnalyticsSummary struct {
	TotalTasks     int               `json:"total_tasks"`
	CompletedTasks int               `json:"completed_tasks"`
	InProgress     int               `json:"in_progress"`
	Pending        int               `json:"pending"`
	Overdue        int               `json:"overdue"`
	DoneToday      int               `json:"done_today"`
	DoneThisWeek   int               `json:"done_this_week"`
	CompletionRate float64           `json:"completion_rate"`
	Priorities     PriorityBreakdown `json:"priority_breakdown"`
	Statuses       StatusBreakdown   `json:"status_breakdown"`
}

// InsightReport carries ordered observations plus a single suggestion,
// where the last applicable rule wins the suggestion slot.
type InsightReport struct {
	Insights       []string `json:"insights"`
	Suggestion     string   `json:"suggestion"`
	CompletionRate float64  `json:"completion_rate"`
	OverdueCount   int      `json:"overdue_count"`
	DueThisWeek    int      `json:"due_this_week"`
}
