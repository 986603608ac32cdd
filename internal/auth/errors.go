package auth

import "errors"

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrCodeInvalid     = errors.New("login code is invalid")
	ErrCodeExpired     = errors.New("login code has expired")
	ErrTooManyAttempts = errors.New("too many attempts, request a new code")
	ErrResendThrottled = errors.New("too many codes requested, try again later")
	ErrUserNotFound    = errors.New("user not found")
	ErrCodeDelivery    = errors.New("failed to deliver login code")
)
