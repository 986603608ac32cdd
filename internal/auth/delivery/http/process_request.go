package http

import (
	"github.com/gin-gonic/gin"

	"daily-three/internal/model"
	"daily-three/pkg/scope"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, bool) {
	return scope.FromContext(c.Request.Context())
}

func (h *handler) processSendCodeReq(c *gin.Context) (sendCodeReq, error) {
	var req sendCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidEmail
	}
	return req, nil
}

func (h *handler) processVerifyCodeReq(c *gin.Context) (verifyCodeReq, error) {
	var req verifyCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
