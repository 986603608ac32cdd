package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"daily-three/internal/task"
)

func TestUpdateTitle(t *testing.T) {
	ctx := context.Background()

	t.Run("Unchanged title is ignored", func(t *testing.T) {
		f := newFixture(today, open("a", 0, today))
		out, err := f.uc.UpdateTitle(ctx, sc, task.UpdateTitleInput{ID: "a", Title: "  a "})
		if err != nil || out.Changed {
			t.Fatalf("UpdateTitle = %+v, %v", out, err)
		}
		if f.store.transactCount() != 0 {
			t.Error("no transaction expected")
		}
	})

	t.Run("Renames", func(t *testing.T) {
		f := newFixture(today, open("a", 0, today))
		out, err := f.uc.UpdateTitle(ctx, sc, task.UpdateTitleInput{ID: "a", Title: "Walk the dog"})
		if err != nil || !out.Changed || out.Task.Title != "Walk the dog" {
			t.Fatalf("UpdateTitle = %+v, %v", out, err)
		}
	})

	t.Run("Missing task", func(t *testing.T) {
		f := newFixture(today)
		if _, err := f.uc.UpdateTitle(ctx, sc, task.UpdateTitleInput{ID: "a", Title: "x"}); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})

	t.Run("Empty title", func(t *testing.T) {
		f := newFixture(today, open("a", 0, today))
		if _, err := f.uc.UpdateTitle(ctx, sc, task.UpdateTitleInput{ID: "a", Title: " "}); !errors.Is(err, task.ErrTitleEmpty) {
			t.Errorf("expected ErrTitleEmpty, got %v", err)
		}
	})
}

func TestToggle(t *testing.T) {
	ctx := context.Background()

	t.Run("Completing moves to the end of completed", func(t *testing.T) {
		f := newFixture(today, open("a", 0, today), open("b", 1, today), done("x", 0, today))
		later := today.Add(time.Hour)
		f.clock.Set(later)

		out, err := f.uc.Toggle(ctx, sc, task.ToggleInput{ID: "a"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Task.Completed || out.Task.Position != 1 || out.Task.CompletedAt == nil || !out.Task.CompletedAt.Equal(later) {
			t.Errorf("unexpected task: %+v", out.Task)
		}

		tasks, _ := f.store.Query(ctx, sc.UserID)
		positions := map[string]int{}
		for _, tk := range tasks {
			positions[tk.ID] = tk.Position
		}
		if positions["b"] != 0 || positions["x"] != 0 || positions["a"] != 1 {
			t.Errorf("positions after toggle = %v", positions)
		}
	})

	t.Run("Reopening keeps completedAt", func(t *testing.T) {
		f := newFixture(today, open("a", 0, today), done("x", 0, today))
		f.clock.Set(today.Add(2 * time.Hour))

		out, err := f.uc.Toggle(ctx, sc, task.ToggleInput{ID: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Completed || out.Task.Position != 1 {
			t.Errorf("unexpected task: %+v", out.Task)
		}
		if out.Task.CompletedAt == nil || !out.Task.CompletedAt.Equal(today) {
			t.Errorf("completedAt changed: %v", out.Task.CompletedAt)
		}
		if m := f.store.lastTransact()[0]; m.CompletedAt != nil {
			t.Error("reopening must not write completedAt")
		}
	})

	t.Run("Reopening respects the cap", func(t *testing.T) {
		f := newFixture(today, open("a", 0, today), open("b", 1, today), open("c", 2, today), done("x", 0, today))
		if _, err := f.uc.Toggle(ctx, sc, task.ToggleInput{ID: "x"}); !errors.Is(err, task.ErrTaskLimitReached) {
			t.Errorf("expected ErrTaskLimitReached, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(today, open("a", 0, today), open("b", 1, today), open("c", 2, today))

	if err := f.uc.Delete(ctx, sc, task.DeleteInput{ID: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.store.transactCount() != 1 {
		t.Fatalf("expected one transaction, got %d", f.store.transactCount())
	}

	tasks, _ := f.store.Query(ctx, sc.UserID)
	if len(tasks) != 2 || tasks[0].ID != "b" || tasks[0].Position != 0 || tasks[1].Position != 1 {
		t.Errorf("unexpected tasks after delete: %+v", tasks)
	}

	if err := f.uc.Delete(ctx, sc, task.DeleteInput{ID: "a"}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("deleting twice should fail with ErrTaskNotFound, got %v", err)
	}
}
