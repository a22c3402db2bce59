package supabase

import (
	"context"
	"time"

	"github.com/Pawankumarhr/prime-trade/domain"
	"github.com/Pawankumarhr/prime-trade/repository"
)

const tasksTable = "tasks"

type taskRepository struct {
	client *Client
	now    func() time.Time
}

// NewTaskRepository returns a record-store-backed implementation of TaskRepository.
func NewTaskRepository(client *Client) repository.TaskRepository {
	return &taskRepository{client: client, now: time.Now}
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	q := NewQuery().Eq("user_id", filter.UserID).OrderDesc("created_at")
	if filter.Status != "" {
		q = q.Eq("status", string(filter.Status))
	}
	if filter.Priority != "" {
		q = q.Eq("priority", string(filter.Priority))
	}
	if filter.Search != "" {
		q = q.ILike("title", filter.Search)
	}

	var tasks []domain.Task
	if err := r.client.Select(ctx, tasksTable, q, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	q := NewQuery().Eq("id", id).Eq("user_id", userID)

	var tasks []domain.Task
	if err := r.client.Select(ctx, tasksTable, q, &tasks); err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return &tasks[0], nil
}

type taskInsert struct {
	UserID      string          `json:"user_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      domain.Status   `json:"status"`
	Priority    domain.Priority `json:"priority"`
	DueDate     *domain.Date    `json:"due_date,omitempty"`
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	record := taskInsert{
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
	}

	var created []domain.Task
	if err := r.client.Insert(ctx, tasksTable, record, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, domain.NewError(domain.ErrCodeUpstream, "failed to create task")
	}
	return &created[0], nil
}

func (r *taskRepository) Update(ctx context.Context, userID, id string, patch repository.TaskPatch) (*domain.Task, error) {
	q := NewQuery().Eq("id", id).Eq("user_id", userID)

	fields := map[string]interface{}{
		"updated_at": r.now().UTC().Format(time.RFC3339Nano),
	}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Status != nil {
		fields["status"] = *patch.Status
	}
	if patch.Priority != nil {
		fields["priority"] = *patch.Priority
	}
	if patch.DueDate != nil {
		fields["due_date"] = patch.DueDate.String()
	}
	if patch.CompletedAt != nil {
		fields["completed_at"] = patch.CompletedAt.UTC().Format(time.RFC3339Nano)
	} else if patch.ClearCompletedAt {
		fields["completed_at"] = nil
	}

	var updated []domain.Task
	if err := r.client.Update(ctx, tasksTable, q, fields, &updated); err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return &updated[0], nil
}

func (r *taskRepository) Delete(ctx context.Context, userID, id string) error {
	q := NewQuery().Eq("id", id).Eq("user_id", userID)
	return r.client.Delete(ctx, tasksTable, q)
}
