package model

import "time"

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID    string
	Email     string
	TokenID   string
	ExpiresAt time.Time
}
