package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"todolist/internal/repository"
	"todolist/internal/repository/memory"
)

func TestCreateThenList(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository())
	ctx := context.Background()

	task, err := svc.Create(ctx, 1, "Buy milk")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Completed {
		t.Error("new task is completed")
	}
	if task.Description != "" {
		t.Errorf("Description = %q, want empty", task.Description)
	}
	if task.OwnerID != 1 {
		t.Errorf("OwnerID = %d, want 1", task.OwnerID)
	}

	tasks, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Buy milk" {
		t.Fatalf("list = %+v, want exactly the created task", tasks)
	}
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository())

	for _, title := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), 1, title)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("Create(%q): err = %v, want ValidationError", title, err)
		}
	}
}

func TestUpdateAppliesOnlyPresentFields(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository())
	ctx := context.Background()

	task, err := svc.Create(ctx, 1, "Buy milk")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	completed := true
	updated, err := svc.Update(ctx, 1, task.ID, nil, &completed)
	if err != nil {
		t.Fatalf("update completed: %v", err)
	}
	if !updated.Completed {
		t.Error("Completed not applied")
	}
	if updated.Title != "Buy milk" {
		t.Errorf("Title changed to %q on completed-only update", updated.Title)
	}

	title := "Buy oat milk"
	updated, err = svc.Update(ctx, 1, task.ID, &title, nil)
	if err != nil {
		t.Fatalf("update title: %v", err)
	}
	if updated.Title != "Buy oat milk" {
		t.Errorf("Title = %q", updated.Title)
	}
	if !updated.Completed {
		t.Error("Completed reset by title-only update")
	}
}

func TestUpdateWithoutFieldsRefreshesUpdatedAt(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository())
	ctx := context.Background()

	task, err := svc.Create(ctx, 1, "noop")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before := task.UpdatedAt

	time.Sleep(2 * time.Millisecond)
	updated, err := svc.Update(ctx, 1, task.ID, nil, nil)
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if updated.Title != "noop" || updated.Completed {
		t.Errorf("empty update changed content: %+v", updated)
	}
	if !updated.UpdatedAt.After(before) {
		t.Errorf("UpdatedAt %v not after %v", updated.UpdatedAt, before)
	}
}

func TestCrossUserIsolation(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository())
	ctx := context.Background()

	mine, err := svc.Create(ctx, 1, "user one's task")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	theirs, err := svc.List(ctx, 2)
	if err != nil {
		t.Fatalf("list as user 2: %v", err)
	}
	if len(theirs) != 0 {
		t.Errorf("user 2 sees %d of user 1's tasks", len(theirs))
	}

	completed := true
	if _, err := svc.Update(ctx, 2, mine.ID, nil, &completed); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("update as user 2: err = %v, want ErrNotFound", err)
	}
	if _, err := svc.Delete(ctx, 2, mine.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("delete as user 2: err = %v, want ErrNotFound", err)
	}

	// the owner's task is untouched
	got, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("list as owner: %v", err)
	}
	if len(got) != 1 || got[0].Completed {
		t.Errorf("owner's task was affected: %+v", got)
	}
}

func TestDeleteReturnsRecordAndIsFinal(t *testing.T) {
	svc := NewTaskService(memory.NewTaskRepository())
	ctx := context.Background()

	task, err := svc.Create(ctx, 1, "short lived")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := svc.Delete(ctx, 1, task.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != task.ID || deleted.Title != "short lived" {
		t.Errorf("deleted = %+v, want the removed record", deleted)
	}

	if _, err := svc.Delete(ctx, 1, task.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}

	tasks, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("list after delete = %+v, want empty", tasks)
	}
}
