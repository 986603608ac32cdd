package postgre

import (
	"context"

	"daily-three/internal/auth/repository"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		created_at    BIGINT NOT NULL,
		last_login_at BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS login_codes (
		id          TEXT PRIMARY KEY,
		email       TEXT NOT NULL,
		code_hash   TEXT NOT NULL,
		attempts    INTEGER NOT NULL DEFAULT 0,
		expires_at  BIGINT NOT NULL,
		created_at  BIGINT NOT NULL,
		consumed_at BIGINT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_login_codes_email ON login_codes (email, created_at)`,
}

// Migrate creates the users and login_codes tables when they do not exist.
func (r *implRepository) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("Migrate"), err)
			return repository.ErrFailedToMigrate
		}
	}
	return nil
}
