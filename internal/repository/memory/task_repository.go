package memory

import (
	"context"
	"sync"
	"time"

	"todolist/internal/domain"
	"todolist/internal/repository"
)

// TaskRepository is the in-process task store. Records are keyed by id with
// a separate insertion-order index so listings keep creation order. The
// store owns id allocation; ids are monotone and never reused within a
// process lifetime.
type TaskRepository struct {
	mu     sync.Mutex
	tasks  map[int64]domain.Task
	order  []int64
	nextID int64
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		tasks: make(map[int64]domain.Task),
	}
}

func (r *TaskRepository) Init(ctx context.Context) error {
	return nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	r.nextID++
	task.ID = r.nextID
	r.tasks[task.ID] = *task
	r.order = append(r.order, task.ID)
	return task.ID, nil
}

func (r *TaskRepository) Get(ctx context.Context, id, ownerID int64) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	return &task, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]domain.Task, 0)
	for _, id := range r.order {
		if task := r.tasks[id]; task.OwnerID == ownerID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok || existing.OwnerID != task.OwnerID {
		return repository.ErrNotFound
	}

	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = time.Now().UTC()
	r.tasks[task.ID] = *task
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return repository.ErrNotFound
	}

	delete(r.tasks, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
