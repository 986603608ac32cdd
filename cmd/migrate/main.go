package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"daily-three/config"
	authRepo "daily-three/internal/auth/repository/postgre"
	taskRepo "daily-three/internal/task/repository/postgre"
	"daily-three/pkg/database"
	"daily-three/pkg/log"
)

// main applies the schema and exits. The API also migrates on start, this
// binary lets deployments run it as a separate step.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, database.Config{Driver: cfg.Database.Driver, DSN: cfg.Database.DSN})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		os.Exit(1)
	}
	defer db.Close()

	migrators := []struct {
		name string
		run  func(context.Context) error
	}{
		{"auth", authRepo.New(db, cfg.Database.Driver, logger).Migrate},
		{"task", taskRepo.New(db, cfg.Database.Driver, logger).Migrate},
	}
	for _, m := range migrators {
		if err := m.run(ctx); err != nil {
			logger.Errorf(ctx, "Migrate %s: %v", m.name, err)
			db.Close()
			os.Exit(1)
		}
		logger.Infof(ctx, "Migrated %s schema", m.name)
	}
}
