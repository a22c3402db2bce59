package repository

import (
	"context"
	"time"

	"github.com/Pawankumarhr/prime-trade/domain"
)

// TaskFilter narrows a listing. UserID is mandatory: every task query is
// scoped to the owning user by the caller, never by the store.
type TaskFilter struct {
	UserID   string
	Status   domain.Status
	Priority domain.Priority
	Search   string
}

// TaskPatch carries only the fields the caller supplied. CompletedAt and
// ClearCompletedAt are set exclusively by the use case enforcing the
// status/completed_at transition.
type TaskPatch struct {
	Title            *string
	Description      *string
	Status           *domain.Status
	Priority         *domain.Priority
	DueDate          *domain.Date
	CompletedAt      *time.Time
	ClearCompletedAt bool
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.DueDate == nil &&
		p.CompletedAt == nil && !p.ClearCompletedAt
}

type TaskRepository interface {
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Get(ctx context.Context, userID, id string) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, userID, id string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, userID, id string) error
}
