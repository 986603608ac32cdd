package postgre

import (
	"strings"

	"daily-three/internal/task"
	repo "daily-three/internal/task/repository"
)

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"owner_id = ?", "deleted = FALSE"}
	args := []any{opt.OwnerID}

	return "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY completed ASC, position ASC, created_at ASC", args
}

// buildUpdateSet builds the SET clause for one update mutation. updated_at is
// always refreshed.
func (r *implRepository) buildUpdateSet(m task.Mutation) (string, []any) {
	var sets []string
	var args []any

	if m.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *m.Title)
	}
	if m.Position != nil {
		sets = append(sets, "position = ?")
		args = append(args, *m.Position)
	}
	if m.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *m.Completed)
	}
	if m.CompletedAt != nil {
		sets = append(sets, "completed_at = ?")
		args = append(args, toMillis(*m.CompletedAt))
	}
	if m.Deleted {
		sets = append(sets, "deleted = TRUE")
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, toMillis(m.At))

	return strings.Join(sets, ", "), args
}
