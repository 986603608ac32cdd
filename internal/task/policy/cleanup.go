package policy

import (
	"time"

	"daily-three/internal/task"
	"daily-three/pkg/datemath"
)

const incompleteLifetimeDays = 3

// DaysOld counts calendar days between creation and now on cal.
func DaysOld(t task.Task, now time.Time, cal *datemath.Calendar) int {
	return cal.DaysBetween(t.CreatedAt, now)
}

// TasksToDelete returns the ids of tasks that expired by now. Completed tasks
// live through their creation day. Incomplete tasks expire on the third day.
func TasksToDelete(tasks []task.Task, now time.Time, cal *datemath.Calendar) []string {
	var ids []string
	for _, t := range tasks {
		if t.Deleted {
			continue
		}
		daysOld := DaysOld(t, now, cal)
		if t.Completed && daysOld > 0 {
			ids = append(ids, t.ID)
			continue
		}
		if !t.Completed && daysOld >= incompleteLifetimeDays {
			ids = append(ids, t.ID)
		}
	}
	return ids
}
