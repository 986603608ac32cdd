package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"daily-three/internal/middleware"
	taskHTTP "daily-three/internal/task/delivery/http"
	"daily-three/internal/task/live"
	"daily-three/internal/task/policy"
	taskRepo "daily-three/internal/task/repository/postgre"
	taskUC "daily-three/internal/task/usecase"
)

// setupTaskDomain wires the task store, the reset gate and registers /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := taskRepo.New(srv.db, srv.dbDriver, srv.l)
	if err := repo.Migrate(ctx); err != nil {
		return fmt.Errorf("task migrate: %w", err)
	}

	store := live.New(repo, srv.l)
	gate := policy.NewGate(srv.kv)

	uc := taskUC.New(srv.l, store, gate, srv.taskConfig)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api.Group("/tasks"), h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
