package http

import (
	"time"

	"daily-three/internal/auth"
)

type sendCodeReq struct {
	Email string `json:"email" binding:"required,email"`
}

func (r sendCodeReq) toInput() auth.SendCodeInput {
	return auth.SendCodeInput{Email: r.Email}
}

type verifyCodeReq struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

func (r verifyCodeReq) toInput() auth.VerifyCodeInput {
	return auth.VerifyCodeInput{Email: r.Email, Code: r.Code}
}

type userResp struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

type sendCodeResp struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

type sessionResp struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userResp  `json:"user"`
}

type meResp struct {
	User userResp `json:"user"`
}

func newUserResp(u auth.User) userResp {
	return userResp{
		ID:          u.ID,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

func (h *handler) newSendCodeResp(o auth.SendCodeOutput) sendCodeResp {
	return sendCodeResp{Email: o.Email, ExpiresAt: o.ExpiresAt}
}

func (h *handler) newSessionResp(o auth.VerifyCodeOutput) sessionResp {
	return sessionResp{
		Token:     o.Session.Token,
		ExpiresAt: o.Session.ExpiresAt,
		User:      newUserResp(o.Session.User),
	}
}

func (h *handler) newMeResp(o auth.MeOutput) meResp {
	return meResp{User: newUserResp(o.User)}
}
