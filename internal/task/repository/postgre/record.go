package postgre

import (
	"database/sql"
	"time"

	"daily-three/internal/task"
)

// taskRecord mirrors a tasks row. Timestamps are unix milliseconds so the same
// schema works on postgres and sqlite.
type taskRecord struct {
	ID          string
	OwnerID     string
	Title       string
	Position    int
	Completed   bool
	CompletedAt sql.NullInt64
	CreatedAt   int64
	UpdatedAt   int64
	Deleted     bool
}

func (rec taskRecord) toDomain() task.Task {
	t := task.Task{
		ID:        rec.ID,
		OwnerID:   rec.OwnerID,
		Title:     rec.Title,
		Position:  rec.Position,
		Completed: rec.Completed,
		CreatedAt: fromMillis(rec.CreatedAt),
		UpdatedAt: fromMillis(rec.UpdatedAt),
		Deleted:   rec.Deleted,
	}
	if rec.CompletedAt.Valid {
		at := fromMillis(rec.CompletedAt.Int64)
		t.CompletedAt = &at
	}
	return t
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
