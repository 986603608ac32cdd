package http

import (
	"github.com/gin-gonic/gin"

	"daily-three/pkg/response"
)

// SendCode godoc
// @Summary     Request a login code
// @Description Mails a 6-digit one-time code to the address.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body sendCodeReq true "Email address"
// @Success     200 {object} sendCodeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Mail delivery failed"
// @Router      /api/v1/auth/code [POST]
func (h *handler) SendCode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendCodeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendCode(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SendCode: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendCodeResp(output))
}

// VerifyCode godoc
// @Summary     Sign in with a login code
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body verifyCodeReq true "Email and code"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Code invalid or expired"
// @Failure     429 {object} response.Resp "Too many attempts"
// @Router      /api/v1/auth/verify [POST]
func (h *handler) VerifyCode(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVerifyCodeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.VerifyCode(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.VerifyCode: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// SignOut godoc
// @Summary     Sign out
// @Description Revokes the bearer token.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/sign-out [POST]
func (h *handler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.SignOut(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.SignOut: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Me godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newMeResp(output))
}
