package auth

import (
	"context"

	"daily-three/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// SendCode mails a fresh one-time code to the address.
	SendCode(ctx context.Context, input SendCodeInput) (SendCodeOutput, error)
	// VerifyCode exchanges a valid code for a session.
	VerifyCode(ctx context.Context, input VerifyCodeInput) (VerifyCodeOutput, error)
	SignOut(ctx context.Context, sc model.Scope) error
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
}
