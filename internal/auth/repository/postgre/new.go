package postgre

import (
	"database/sql"
	"fmt"
	"time"

	"daily-three/internal/auth/repository"
	"daily-three/pkg/database"
	"daily-three/pkg/log"
)

type implRepository struct {
	db     *sql.DB
	driver string
	l      log.Logger
}

// New creates a SQL-backed Repository for the auth domain.
func New(db *sql.DB, driver string, l log.Logger) repository.Repository {
	if db == nil {
		panic("auth/repository/postgre: db is required")
	}
	return &implRepository{db: db, driver: driver, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("auth/repository/postgre.%s", method)
}

func (r *implRepository) rebind(query string) string {
	return database.Rebind(r.driver, query)
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
