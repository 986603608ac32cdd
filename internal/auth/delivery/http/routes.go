package http

import (
	"github.com/gin-gonic/gin"

	"daily-three/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/code", mw.RateLimit(), h.SendCode)
	rg.POST("/verify", h.VerifyCode)

	authed := rg.Group("", mw.Auth())
	{
		authed.POST("/sign-out", h.SignOut)
		authed.GET("/me", h.Me)
	}
}
