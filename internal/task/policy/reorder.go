package policy

import (
	"sort"

	"daily-three/internal/task"
)

// PositionUpdate assigns a new position to one task.
type PositionUpdate struct {
	ID       string
	Position int
}

// Partition splits non-deleted tasks by completion status, each ordered by position.
func Partition(tasks []task.Task) (incomplete, completed []task.Task) {
	for _, t := range tasks {
		if t.Deleted {
			continue
		}
		if t.Completed {
			completed = append(completed, t)
		} else {
			incomplete = append(incomplete, t)
		}
	}
	byPosition := func(s []task.Task) {
		sort.SliceStable(s, func(i, j int) bool { return s[i].Position < s[j].Position })
	}
	byPosition(incomplete)
	byPosition(completed)
	return incomplete, completed
}

// Reorder moves the item at src to dst within one partition and returns the
// new position of every item. Equal or out of range indexes yield no updates.
func Reorder(sub []task.Task, src, dst int) []PositionUpdate {
	if src == dst || src < 0 || dst < 0 || src >= len(sub) || dst >= len(sub) {
		return nil
	}

	moved := Move(sub, src, dst)
	updates := make([]PositionUpdate, len(moved))
	for i, t := range moved {
		updates[i] = PositionUpdate{ID: t.ID, Position: i}
	}
	return updates
}

// Move returns a copy of sub with the element at src reinserted at dst.
func Move(sub []task.Task, src, dst int) []task.Task {
	out := make([]task.Task, 0, len(sub))
	out = append(out, sub[:src]...)
	out = append(out, sub[src+1:]...)

	item := sub[src]
	out = append(out[:dst], append([]task.Task{item}, out[dst:]...)...)
	return out
}

// Locate finds the partition and index of activeID and overID for a drag.
// Both ids must belong to the same partition.
func Locate(tasks []task.Task, activeID, overID string) (sub []task.Task, src, dst int, err error) {
	incomplete, completed := Partition(tasks)
	ia, ca := indexOf(incomplete, activeID), indexOf(completed, activeID)
	io, co := indexOf(incomplete, overID), indexOf(completed, overID)

	switch {
	case (ia < 0 && ca < 0) || (io < 0 && co < 0):
		return nil, 0, 0, task.ErrTaskNotFound
	case ia >= 0 && io >= 0:
		return incomplete, ia, io, nil
	case ca >= 0 && co >= 0:
		return completed, ca, co, nil
	default:
		return nil, 0, 0, task.ErrCrossPartition
	}
}

// Compact returns the updates that make positions of an ordered partition
// contiguous from zero. Tasks already in place are skipped.
func Compact(sub []task.Task) []PositionUpdate {
	var updates []PositionUpdate
	for i, t := range sub {
		if t.Position != i {
			updates = append(updates, PositionUpdate{ID: t.ID, Position: i})
		}
	}
	return updates
}

// Without returns sub minus the tasks whose id is in ids.
func Without(sub []task.Task, ids ...string) []task.Task {
	skip := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		skip[id] = struct{}{}
	}
	out := make([]task.Task, 0, len(sub))
	for _, t := range sub {
		if _, ok := skip[t.ID]; !ok {
			out = append(out, t)
		}
	}
	return out
}

func indexOf(sub []task.Task, id string) int {
	for i, t := range sub {
		if t.ID == id {
			return i
		}
	}
	return -1
}
