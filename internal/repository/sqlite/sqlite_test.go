package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"todolist/internal/domain"
	"todolist/internal/repository"
)

func openTestRepos(t *testing.T) (*UserRepository, *TaskRepository) {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "todo.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	users := NewUserRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()
	if err := users.Init(ctx); err != nil {
		t.Fatalf("init users: %v", err)
	}
	if err := tasks.Init(ctx); err != nil {
		t.Fatalf("init tasks: %v", err)
	}
	return users, tasks
}

func TestSQLiteUserEmailUnique(t *testing.T) {
	users, _ := openTestRepos(t)
	ctx := context.Background()

	if _, err := users.Create(ctx, &domain.User{Name: "a", Email: "a@example.com", PasswordHash: "x"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := users.Create(ctx, &domain.User{Name: "b", Email: "a@example.com", PasswordHash: "y"}); !errors.Is(err, repository.ErrEmailTaken) {
		t.Fatalf("duplicate email: err = %v, want ErrEmailTaken", err)
	}

	count, err := users.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestSQLiteTaskOwnershipScopedCRUD(t *testing.T) {
	users, tasks := openTestRepos(t)
	ctx := context.Background()

	owner := &domain.User{Name: "a", Email: "a@example.com", PasswordHash: "x"}
	if _, err := users.Create(ctx, owner); err != nil {
		t.Fatalf("create user: %v", err)
	}

	task := &domain.Task{Title: "persisted", OwnerID: owner.ID}
	if _, err := tasks.Create(ctx, task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	if _, err := tasks.Get(ctx, task.ID, owner.ID+1); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("foreign get: err = %v, want ErrNotFound", err)
	}

	task.Completed = true
	if err := tasks.Update(ctx, task); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := tasks.Get(ctx, task.ID, owner.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Completed || got.Title != "persisted" {
		t.Errorf("got = %+v", got)
	}

	list, err := tasks.ListByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list = %+v, want one task", list)
	}

	if err := tasks.Delete(ctx, task.ID, owner.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := tasks.Delete(ctx, task.ID, owner.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}
