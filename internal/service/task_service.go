package service

import (
	"context"
	"strings"

	"todolist/internal/domain"
	"todolist/internal/repository"
)

// TaskService coordinates ownership-scoped task operations. Every method
// takes the authenticated user's id and touches only that user's tasks;
// a task owned by someone else is indistinguishable from one that does
// not exist.
type TaskService interface {
	List(ctx context.Context, userID int64) ([]domain.Task, error)
	Create(ctx context.Context, userID int64, title string) (*domain.Task, error)
	Update(ctx context.Context, userID, id int64, title *string, completed *bool) (*domain.Task, error)
	Delete(ctx context.Context, userID, id int64) (*domain.Task, error)
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) List(ctx context.Context, userID int64) ([]domain.Task, error) {
	return s.tasks.ListByOwner(ctx, userID)
}

func (s *taskService) Create(ctx context.Context, userID int64, title string) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, validationf("Text is required")
	}

	task := &domain.Task{
		Title:   title,
		OwnerID: userID,
	}
	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update applies only the fields present in the request. A request carrying
// neither field still refreshes UpdatedAt.
func (s *taskService) Update(ctx context.Context, userID, id int64, title *string, completed *bool) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		task.Title = *title
	}
	if completed != nil {
		task.Completed = *completed
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task and returns the removed record.
func (s *taskService) Delete(ctx context.Context, userID, id int64) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.Delete(ctx, id, userID); err != nil {
		return nil, err
	}
	return task, nil
}
