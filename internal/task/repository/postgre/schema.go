package postgre

import (
	"context"

	"daily-three/internal/task/repository"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id           TEXT PRIMARY KEY,
		owner_id     TEXT NOT NULL,
		title        TEXT NOT NULL,
		position     INTEGER NOT NULL,
		completed    BOOLEAN NOT NULL DEFAULT FALSE,
		completed_at BIGINT,
		created_at   BIGINT NOT NULL,
		updated_at   BIGINT NOT NULL,
		deleted      BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks (owner_id, deleted, completed, position)`,
}

// Migrate creates the tasks table when it does not exist.
func (r *implRepository) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
			return repository.ErrFailedToMigrate
		}
	}
	return nil
}
