package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"daily-three/internal/auth"
	repo "daily-three/internal/auth/repository"
)

// SendCode stores a hashed one-time code and mails the plain code.
func (uc *implUseCase) SendCode(ctx context.Context, input auth.SendCodeInput) (auth.SendCodeOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return auth.SendCodeOutput{}, err
	}

	now := uc.cfg.Now()
	sent, err := uc.repo.CountLoginCodes(ctx, repo.CountLoginCodesOptions{
		Email: email,
		Since: now.Add(-uc.cfg.ResendWindow),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendCode CountLoginCodes: %v", err)
		return auth.SendCodeOutput{}, err
	}
	if sent >= uc.cfg.MaxResends {
		return auth.SendCodeOutput{}, auth.ErrResendThrottled
	}

	code, err := generateCode()
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendCode generateCode: %v", err)
		return auth.SendCodeOutput{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), uc.hashCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendCode bcrypt: %v", err)
		return auth.SendCodeOutput{}, err
	}

	stored, err := uc.repo.CreateLoginCode(ctx, repo.CreateLoginCodeOptions{
		Email:     email,
		CodeHash:  string(hash),
		ExpiresAt: now.Add(uc.cfg.CodeTTL),
		At:        now,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SendCode CreateLoginCode: %v", err)
		return auth.SendCodeOutput{}, err
	}

	if err := uc.mailer.SendLoginCode(ctx, email, code, uc.cfg.CodeTTL); err != nil {
		uc.l.Errorf(ctx, "uc.SendCode SendLoginCode: %v", err)
		return auth.SendCodeOutput{}, auth.ErrCodeDelivery
	}

	return auth.SendCodeOutput{Email: email, ExpiresAt: stored.ExpiresAt}, nil
}
