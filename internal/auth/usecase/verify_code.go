package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"daily-three/internal/auth"
	repo "daily-three/internal/auth/repository"
	"daily-three/internal/model"
)

// VerifyCode checks the latest code of an email and opens a session.
// Each wrong guess counts. Reaching the limit burns the code.
func (uc *implUseCase) VerifyCode(ctx context.Context, input auth.VerifyCodeInput) (auth.VerifyCodeOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return auth.VerifyCodeOutput{}, err
	}
	code := strings.TrimSpace(input.Code)
	if !wellFormedCode(code) {
		return auth.VerifyCodeOutput{}, auth.ErrCodeInvalid
	}

	stored, err := uc.repo.GetLatestLoginCode(ctx, email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.VerifyCode GetLatestLoginCode: %v", err)
		return auth.VerifyCodeOutput{}, err
	}
	if stored.ID == "" {
		return auth.VerifyCodeOutput{}, auth.ErrCodeInvalid
	}

	now := uc.cfg.Now()
	if stored.Attempts >= uc.cfg.MaxAttempts {
		return auth.VerifyCodeOutput{}, auth.ErrTooManyAttempts
	}
	if !now.Before(stored.ExpiresAt) {
		return auth.VerifyCodeOutput{}, auth.ErrCodeExpired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.CodeHash), []byte(code)); err != nil {
		attempts, incErr := uc.repo.IncrementAttempts(ctx, stored.ID)
		if incErr != nil {
			uc.l.Errorf(ctx, "uc.VerifyCode IncrementAttempts: %v", incErr)
			return auth.VerifyCodeOutput{}, incErr
		}
		if attempts >= uc.cfg.MaxAttempts {
			if err := uc.repo.ExpireLoginCode(ctx, stored.ID, now); err != nil {
				uc.l.Errorf(ctx, "uc.VerifyCode ExpireLoginCode: %v", err)
			}
			return auth.VerifyCodeOutput{}, auth.ErrTooManyAttempts
		}
		return auth.VerifyCodeOutput{}, auth.ErrCodeInvalid
	}

	if err := uc.repo.ConsumeLoginCode(ctx, stored.ID, now); err != nil {
		uc.l.Errorf(ctx, "uc.VerifyCode ConsumeLoginCode: %v", err)
		return auth.VerifyCodeOutput{}, err
	}

	user, err := uc.repo.UpsertUser(ctx, repo.UpsertUserOptions{Email: email, At: now})
	if err != nil {
		uc.l.Errorf(ctx, "uc.VerifyCode UpsertUser: %v", err)
		return auth.VerifyCodeOutput{}, err
	}

	token, sc, err := uc.tokens.CreateToken(model.Scope{UserID: user.ID, Email: user.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.VerifyCode CreateToken: %v", err)
		return auth.VerifyCodeOutput{}, err
	}

	uc.l.Infof(ctx, "uc.VerifyCode: user %s signed in", user.ID)
	return auth.VerifyCodeOutput{Session: auth.Session{
		Token:     token,
		ExpiresAt: sc.ExpiresAt,
		User:      user,
	}}, nil
}
