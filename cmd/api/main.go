package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"daily-three/config"
	_ "daily-three/docs" // Swagger docs
	authUC "daily-three/internal/auth/usecase"
	"daily-three/internal/httpserver"
	"daily-three/internal/middleware"
	taskUC "daily-three/internal/task/usecase"
	"daily-three/pkg/database"
	"daily-three/pkg/kvstore"
	"daily-three/pkg/log"
	"daily-three/pkg/mailer"
	"daily-three/pkg/scope"
)

// @title       Daily Three API
// @description A daily list of at most three tasks with magic-code sign in.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Daily Three...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := database.Open(ctx, database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready (%s)", cfg.Database.Driver)

	// 4. Device state for the daily reset markers
	kv, err := kvstore.NewDisk(cfg.Reset.StateDir)
	if err != nil {
		logger.Error(ctx, "Failed to open device state store: ", err)
		return
	}

	// 5. Mailer
	var m mailer.Mailer
	if cfg.SMTP.DryRun {
		logger.Warn(ctx, "SMTP dry run: login codes are written to the log")
		m = mailer.NewDryRun(logger)
	} else {
		m = mailer.NewSMTP(mailer.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		DBDriver:    cfg.Database.Driver,
		KV:          kv,
		Mailer:      m,
		Tokens:      scope.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Middleware: middleware.Config{
			SendCodeRatePerMin: cfg.Auth.SendCodeRatePerMin,
			AllowedOrigins:     cfg.CORS.AllowedOrigins,
		},
		Auth: authUC.Config{
			CodeTTL:      cfg.Auth.CodeTTL,
			MaxAttempts:  cfg.Auth.MaxAttempts,
			ResendWindow: cfg.Auth.ResendWindow,
			MaxResends:   cfg.Auth.MaxResends,
		},
		Task: taskUC.Config{
			DefaultTimezone: cfg.Reset.DefaultTimezone,
			TickInterval:    cfg.Reset.TickInterval,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
