package repository

import (
	"context"

	"todolist/internal/domain"
)

// TaskRepository exposes persistence operations for Task aggregates. Every
// lookup that names a task id also names the owner; a backend must never
// return or touch a task whose OwnerID differs.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Task, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id, ownerID int64) error
}
