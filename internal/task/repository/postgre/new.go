package postgre

import (
	"database/sql"
	"fmt"

	"daily-three/internal/task/repository"
	"daily-three/pkg/database"
	"daily-three/pkg/log"
)

type implRepository struct {
	db     *sql.DB
	driver string
	l      log.Logger
}

// New creates a SQL-backed Repository for the task domain. driver selects the
// placeholder style and accepts database.DriverPostgres or database.DriverSQLite.
func New(db *sql.DB, driver string, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, driver: driver, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}

func (r *implRepository) rebind(query string) string {
	return database.Rebind(r.driver, query)
}
