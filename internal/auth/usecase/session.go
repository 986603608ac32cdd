package usecase

import (
	"context"

	"daily-three/internal/auth"
	repo "daily-three/internal/auth/repository"
	"daily-three/internal/model"
)

// SignOut revokes the token the request was authenticated with.
func (uc *implUseCase) SignOut(ctx context.Context, sc model.Scope) error {
	uc.tokens.Revoke(sc)
	return nil
}

// Me returns the signed-in user.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return auth.MeOutput{}, err
	}
	if user.ID == "" {
		return auth.MeOutput{}, auth.ErrUserNotFound
	}
	return auth.MeOutput{User: user}, nil
}
