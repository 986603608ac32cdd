package auth

import "time"

// CodeLength is the number of digits in a login code.
const CodeLength = 6

// User is an account identified by its email address.
type User struct {
	ID          string
	Email       string
	CreatedAt   time.Time
	LastLoginAt time.Time
}

// LoginCode is a hashed one-time code mailed to Email.
type LoginCode struct {
	ID         string
	Email      string
	CodeHash   string
	Attempts   int
	ExpiresAt  time.Time
	CreatedAt  time.Time
	ConsumedAt *time.Time
}

// Session is what a successful verification hands back to the client.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      User
}

// --- UseCase Inputs ---

type SendCodeInput struct {
	Email string
}

type VerifyCodeInput struct {
	Email string
	Code  string
}

// --- UseCase Outputs ---

type SendCodeOutput struct {
	Email     string
	ExpiresAt time.Time
}

type VerifyCodeOutput struct {
	Session Session
}

type MeOutput struct {
	User User
}
