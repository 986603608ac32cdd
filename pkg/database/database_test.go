package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"daily-three/pkg/database"
)

func TestOpenSQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(context.Background(), database.Config{Driver: database.DriverSQLite, DSN: dsn})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var one int
	if err := db.QueryRow("SELECT 1").Scan(&one); err != nil || one != 1 {
		t.Fatalf("SELECT 1 = %d, %v", one, err)
	}
}

func TestOpenValidation(t *testing.T) {
	if _, err := database.Open(context.Background(), database.Config{Driver: "mysql", DSN: "x"}); err == nil {
		t.Error("expected unsupported driver error")
	}
	if _, err := database.Open(context.Background(), database.Config{Driver: database.DriverPostgres}); err == nil {
		t.Error("expected missing dsn error")
	}
}

func TestRebind(t *testing.T) {
	q := "UPDATE t SET a = ?, b = ? WHERE id = ?"
	if got := database.Rebind(database.DriverPostgres, q); got != "UPDATE t SET a = $1, b = $2 WHERE id = $3" {
		t.Errorf("postgres rebind = %q", got)
	}
	if got := database.Rebind(database.DriverSQLite, q); got != q {
		t.Errorf("sqlite rebind = %q", got)
	}
}
