package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	authHTTP "daily-three/internal/auth/delivery/http"
	authRepo "daily-three/internal/auth/repository/postgre"
	authUC "daily-three/internal/auth/usecase"
	"daily-three/internal/middleware"
)

// setupAuthDomain wires users and login codes and registers /api/v1/auth.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := authRepo.New(srv.db, srv.dbDriver, srv.l)
	if err := repo.Migrate(ctx); err != nil {
		return fmt.Errorf("auth migrate: %w", err)
	}

	uc := authUC.New(srv.l, repo, srv.mailer, srv.tokens, srv.authConfig)
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(api.Group("/auth"), h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
