package policy_test

import (
	"errors"
	"reflect"
	"testing"

	"daily-three/internal/task"
	"daily-three/internal/task/policy"
)

func sub(ids ...string) []task.Task {
	out := make([]task.Task, len(ids))
	for i, id := range ids {
		out[i] = task.Task{ID: id, Position: i}
	}
	return out
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		src, dst int
		want     []policy.PositionUpdate
	}{
		{
			name: "Last to first",
			ids:  []string{"A", "B", "C"},
			src:  2, dst: 0,
			want: []policy.PositionUpdate{{ID: "C", Position: 0}, {ID: "A", Position: 1}, {ID: "B", Position: 2}},
		},
		{
			name: "First to middle",
			ids:  []string{"A", "B", "C"},
			src:  0, dst: 1,
			want: []policy.PositionUpdate{{ID: "B", Position: 0}, {ID: "A", Position: 1}, {ID: "C", Position: 2}},
		},
		{name: "Same index", ids: []string{"A", "B"}, src: 1, dst: 1, want: nil},
		{name: "Out of range", ids: []string{"A", "B"}, src: 0, dst: 5, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Reorder(sub(tt.ids...), tt.src, tt.dst)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Reorder = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReorderFirstToLastIsLeftRotation(t *testing.T) {
	ids := []string{"A", "B", "C", "D", "E"}
	got := policy.Reorder(sub(ids...), 0, len(ids)-1)

	if len(got) != len(ids) {
		t.Fatalf("got %d updates, want %d", len(got), len(ids))
	}
	seen := make(map[int]bool)
	for i, u := range got {
		if u.ID != ids[(i+1)%len(ids)] {
			t.Errorf("position %d holds %s, want %s", i, u.ID, ids[(i+1)%len(ids)])
		}
		if u.Position < 0 || u.Position >= len(ids) || seen[u.Position] {
			t.Errorf("position %d out of range or repeated", u.Position)
		}
		seen[u.Position] = true
	}
}

func TestLocate(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Position: 0},
		{ID: "b", Position: 1},
		{ID: "x", Position: 0, Completed: true},
		{ID: "y", Position: 1, Completed: true},
	}

	t.Run("Same partition", func(t *testing.T) {
		s, src, dst, err := policy.Locate(tasks, "y", "x")
		if err != nil {
			t.Fatalf("Locate: %v", err)
		}
		if len(s) != 2 || s[0].ID != "x" || src != 1 || dst != 0 {
			t.Errorf("unexpected locate result %v %d %d", s, src, dst)
		}
	})

	t.Run("Cross partition", func(t *testing.T) {
		if _, _, _, err := policy.Locate(tasks, "a", "x"); !errors.Is(err, task.ErrCrossPartition) {
			t.Errorf("expected ErrCrossPartition, got %v", err)
		}
	})

	t.Run("Unknown id", func(t *testing.T) {
		if _, _, _, err := policy.Locate(tasks, "a", "zzz"); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestPartitionOrdersByPosition(t *testing.T) {
	tasks := []task.Task{
		{ID: "c", Position: 2},
		{ID: "done", Position: 0, Completed: true},
		{ID: "a", Position: 0},
		{ID: "gone", Position: 1, Deleted: true},
		{ID: "b", Position: 1},
	}
	incomplete, completed := policy.Partition(tasks)
	var got []string
	for _, t := range incomplete {
		got = append(got, t.ID)
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("incomplete order = %v", got)
	}
	if len(completed) != 1 || completed[0].ID != "done" {
		t.Errorf("completed = %v", completed)
	}
}

func TestCompactAndWithout(t *testing.T) {
	s := sub("A", "B", "C", "D")
	rest := policy.Without(s, "B")
	got := policy.Compact(rest)
	want := []policy.PositionUpdate{{ID: "C", Position: 1}, {ID: "D", Position: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Compact = %v, want %v", got, want)
	}
	if got := policy.Compact(sub("A", "B")); got != nil {
		t.Errorf("contiguous partition should need no updates, got %v", got)
	}
}
