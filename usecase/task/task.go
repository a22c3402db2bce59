package task

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Pawankumarhr/prime-trade/domain"
	"github.com/Pawankumarhr/prime-trade/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
	now    func() time.Time
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *UseCase) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	tasks, err := uc.tasks.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (uc *UseCase) Get(ctx context.Context, userID, id string) (*domain.Task, error) {
	return uc.tasks.Get(ctx, userID, id)
}

// Create stores a new task, applying the pending/medium defaults.
func (uc *UseCase) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "title is required")
	}
	if task.Status == "" {
		task.Status = domain.StatusPending
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if !task.Status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "invalid status")
	}
	if !task.Priority.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "invalid priority")
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task created", zap.String("task_id", created.ID), zap.String("user_id", created.UserID))
	return created, nil
}

// Patch applies a partial update scoped to the owning user. Entering the
// done status stamps completed_at; leaving it clears the stamp.
func (uc *UseCase) Patch(ctx context.Context, userID, id string, patch repository.TaskPatch) (*domain.Task, error) {
	if patch.Empty() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "no fields to update")
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "title cannot be empty")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "invalid status")
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, domain.NewError(domain.ErrCodeInvalid, "invalid priority")
	}

	if patch.Status != nil {
		if *patch.Status == domain.StatusDone {
			completed := uc.now().UTC()
			patch.CompletedAt = &completed
			patch.ClearCompletedAt = false
		} else {
			patch.CompletedAt = nil
			patch.ClearCompletedAt = true
		}
	}

	updated, err := uc.tasks.Update(ctx, userID, id, patch)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task updated", zap.String("task_id", id), zap.String("user_id", userID))
	return updated, nil
}

// Delete removes an owned task. Unmatched ids are a silent no-op.
func (uc *UseCase) Delete(ctx context.Context, userID, id string) error {
	if err := uc.tasks.Delete(ctx, userID, id); err != nil {
		return err
	}
	uc.logger.Info("task deleted", zap.String("task_id", id), zap.String("user_id", userID))
	return nil
}
