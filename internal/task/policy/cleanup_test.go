package policy_test

import (
	"fmt"
	"reflect"
	"sort"
	"testing"
	"time"

	"daily-three/internal/task"
	"daily-three/internal/task/policy"
)

func TestTasksToDelete(t *testing.T) {
	cal := mustCalendar(t, "America/New_York")
	loc := cal.Location()
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, loc)
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	tasks := []task.Task{
		{ID: "fresh-open", CreatedAt: daysAgo(0)},
		{ID: "fresh-done", CreatedAt: daysAgo(0), Completed: true},
		{ID: "old-done", CreatedAt: daysAgo(1), Completed: true},
		{ID: "one-day-open", CreatedAt: daysAgo(1)},
		{ID: "two-day-open", CreatedAt: daysAgo(2)},
		{ID: "three-day-open", CreatedAt: daysAgo(3)},
		{ID: "ancient-open", CreatedAt: daysAgo(30)},
		{ID: "already-deleted", CreatedAt: daysAgo(30), Deleted: true},
	}

	got := policy.TasksToDelete(tasks, now, cal)
	sort.Strings(got)
	want := []string{"ancient-open", "old-done", "three-day-open"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TasksToDelete = %v, want %v", got, want)
	}
}

func TestTasksToDeleteNeverReturnsDeleted(t *testing.T) {
	cal := mustCalendar(t, "UTC")
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

	var tasks []task.Task
	for d := 0; d < 6; d++ {
		for _, completed := range []bool{true, false} {
			tasks = append(tasks, task.Task{
				ID:        fmt.Sprintf("%d-%v", d, completed),
				CreatedAt: now.AddDate(0, 0, -d),
				Completed: completed,
				Deleted:   true,
			})
		}
	}
	if got := policy.TasksToDelete(tasks, now, cal); len(got) != 0 {
		t.Errorf("expected no ids for deleted tasks, got %v", got)
	}
}

func TestTasksToDeleteIsIdempotent(t *testing.T) {
	cal := mustCalendar(t, "UTC")
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{ID: "a", CreatedAt: now.AddDate(0, 0, -4)},
		{ID: "b", CreatedAt: now.AddDate(0, 0, -1), Completed: true},
		{ID: "c", CreatedAt: now},
	}

	first := policy.TasksToDelete(tasks, now, cal)
	second := policy.TasksToDelete(tasks, now, cal)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ: %v vs %v", first, second)
	}
}

func TestTasksToDeleteDayBoundaries(t *testing.T) {
	cal := mustCalendar(t, "America/New_York")
	loc := cal.Location()
	created := time.Date(2024, 6, 1, 23, 59, 0, 0, loc)
	open := []task.Task{{ID: "late-night", CreatedAt: created}}

	t.Run("Two local days later is kept", func(t *testing.T) {
		now := created.AddDate(0, 0, 2)
		if got := policy.TasksToDelete(open, now, cal); len(got) != 0 {
			t.Errorf("expected task kept on day two, got %v", got)
		}
	})

	t.Run("Third local day deletes", func(t *testing.T) {
		now := time.Date(2024, 6, 4, 0, 1, 0, 0, loc)
		if got := policy.TasksToDelete(open, now, cal); len(got) != 1 {
			t.Errorf("expected task deleted on day three, got %v", got)
		}
	})

	t.Run("Completed late at night expires after midnight", func(t *testing.T) {
		done := []task.Task{{ID: "done", CreatedAt: created, Completed: true}}
		now := time.Date(2024, 6, 2, 0, 30, 0, 0, loc)
		if got := policy.TasksToDelete(done, now, cal); len(got) != 1 {
			t.Errorf("expected completed task deleted one minute past midnight, got %v", got)
		}
	})
}
