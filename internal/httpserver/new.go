package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	authUC "daily-three/internal/auth/usecase"
	"daily-three/internal/middleware"
	taskUC "daily-three/internal/task/usecase"
	"daily-three/pkg/kvstore"
	"daily-three/pkg/log"
	"daily-three/pkg/mailer"
	"daily-three/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	db       *sql.DB
	dbDriver string
	kv       kvstore.Store
	mailer   mailer.Mailer
	tokens   scope.Manager

	// Domains
	middlewareConfig middleware.Config
	authConfig       authUC.Config
	taskConfig       taskUC.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB       *sql.DB
	DBDriver string
	KV       kvstore.Store
	Mailer   mailer.Mailer
	Tokens   scope.Manager

	Middleware middleware.Config
	Auth       authUC.Config
	Task       taskUC.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		db:               cfg.DB,
		dbDriver:         cfg.DBDriver,
		kv:               cfg.KV,
		mailer:           cfg.Mailer,
		tokens:           cfg.Tokens,
		middlewareConfig: cfg.Middleware,
		authConfig:       cfg.Auth,
		taskConfig:       cfg.Task,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.kv == nil {
		return errors.New("device state store is required")
	}
	if srv.mailer == nil {
		return errors.New("mailer is required")
	}
	if srv.tokens == nil {
		return errors.New("token manager is required")
	}
	return nil
}
