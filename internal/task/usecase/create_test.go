package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"daily-three/internal/model"
	"daily-three/internal/task"
	"daily-three/internal/task/repository"
)

var (
	sc    = model.Scope{UserID: "u1", Email: "me@example.com"}
	today = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Title validation", func(t *testing.T) {
		tests := []struct {
			name    string
			title   string
			wantErr error
		}{
			{name: "Empty", title: "", wantErr: task.ErrTitleEmpty},
			{name: "Whitespace", title: "   \t", wantErr: task.ErrTitleEmpty},
			{name: "Too long", title: strings.Repeat("a", 101), wantErr: task.ErrTitleTooLong},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(today)
				_, err := f.uc.Create(ctx, sc, task.CreateInput{Title: tt.title})
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				if f.store.transactCount() != 0 {
					t.Error("invalid title must not reach the store")
				}
			})
		}
	})

	t.Run("Length counts characters", func(t *testing.T) {
		f := newFixture(today)
		out, err := f.uc.Create(ctx, sc, task.CreateInput{Title: "  " + strings.Repeat("é", 100) + "  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Title != strings.Repeat("é", 100) {
			t.Errorf("title not trimmed: %q", out.Task.Title)
		}
	})

	t.Run("Fourth incomplete task is rejected without a store call", func(t *testing.T) {
		f := newFixture(today, open("a", 0, today), open("b", 1, today), open("c", 2, today))
		_, err := f.uc.Create(ctx, sc, task.CreateInput{Title: "one more"})
		if !errors.Is(err, task.ErrTaskLimitReached) {
			t.Fatalf("expected ErrTaskLimitReached, got %v", err)
		}
		if f.store.transactCount() != 0 {
			t.Error("limit gate must run before any transaction")
		}
	})

	t.Run("Appends after incomplete tasks", func(t *testing.T) {
		f := newFixture(today, open("a", 0, today), open("b", 1, today), done("c", 0, today))
		out, err := f.uc.Create(ctx, sc, task.CreateInput{Title: "Buy milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Position != 2 || out.Task.ID == "" || out.Task.Completed {
			t.Errorf("unexpected task: %+v", out.Task)
		}
		muts := f.store.lastTransact()
		if len(muts) != 1 || muts[0].Kind != task.MutationCreate || *muts[0].Position != 2 {
			t.Errorf("unexpected mutations: %+v", muts)
		}
	})

	t.Run("Limit hit inside the store transaction", func(t *testing.T) {
		// The board read here is stale; a concurrent create already took the last slot.
		f := newFixture(today, open("a", 0, today), open("b", 1, today))
		f.store.transactErr = repository.ErrActiveLimit
		_, err := f.uc.Create(ctx, sc, task.CreateInput{Title: "racing"})
		if !errors.Is(err, task.ErrTaskLimitReached) {
			t.Errorf("expected ErrTaskLimitReached, got %v", err)
		}
	})

	t.Run("Store failure is returned", func(t *testing.T) {
		f := newFixture(today)
		f.store.transactErr = errors.New("network down")
		if _, err := f.uc.Create(ctx, sc, task.CreateInput{Title: "x"}); err == nil {
			t.Error("expected error")
		}
	})
}
