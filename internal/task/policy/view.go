package policy

import (
	"time"

	"daily-three/internal/task"
	"daily-three/pkg/datemath"
)

// BadgeFor returns the overdue badge of a task that is daysOld days old.
func BadgeFor(daysOld int, completed bool) task.Badge {
	if completed {
		return task.BadgeNone
	}
	switch daysOld {
	case 1:
		return task.BadgeDueYesterday
	case 2:
		return task.BadgeSelfDestructsAtMidnight
	default:
		return task.BadgeNone
	}
}

// ThemeFor maps a local hour to its time-of-day bucket.
func ThemeFor(hour int) task.Theme {
	switch {
	case hour >= 6 && hour < 12:
		return task.ThemeMorning
	case hour >= 12 && hour < 18:
		return task.ThemeAfternoon
	case hour >= 18 && hour < 24:
		return task.ThemeEvening
	default:
		return task.ThemeNight
	}
}

// BuildBoard annotates tasks for display on cal at now.
func BuildBoard(tasks []task.Task, now time.Time, cal *datemath.Calendar) task.Board {
	incomplete, completed := Partition(tasks)
	return task.Board{
		Incomplete: views(incomplete, now, cal),
		Completed:  views(completed, now, cal),
		CanAdd:     len(incomplete) < task.MaxActiveTasks,
		Theme:      ThemeFor(cal.Hour(now)),
	}
}

func views(sub []task.Task, now time.Time, cal *datemath.Calendar) []task.TaskView {
	out := make([]task.TaskView, len(sub))
	for i, t := range sub {
		daysOld := DaysOld(t, now, cal)
		out[i] = task.TaskView{
			Task:    t,
			DaysOld: daysOld,
			Overdue: !t.Completed && daysOld > 0,
			Badge:   BadgeFor(daysOld, t.Completed),
		}
	}
	return out
}

// Celebration detects the moment the last incomplete task gets completed.
// The zero value has seen nothing yet, so the first observation never fires.
type Celebration struct {
	seen bool
	prev int
}

// Observe records the current counts and reports a 1 -> 0 transition of
// incomplete tasks while the list is non-empty.
func (c *Celebration) Observe(incomplete, total int) bool {
	fire := c.seen && c.prev == 1 && incomplete == 0 && total > 0
	c.seen = true
	c.prev = incomplete
	return fire
}
