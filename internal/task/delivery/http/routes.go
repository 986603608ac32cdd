package http

import (
	"github.com/gin-gonic/gin"

	"daily-three/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every task route requires an authenticated user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("", mw.Auth())
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/stream", h.Stream)
		tasks.POST("/reorder", h.Reorder)
		tasks.POST("/daily-reset", h.DailyReset)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.Toggle)
	}
}
