package repository

import "time"

// UpsertUserOptions holds parameters for creating a user or refreshing its last login.
type UpsertUserOptions struct {
	Email string
	At    time.Time
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// CreateLoginCodeOptions holds parameters for storing a new login code.
type CreateLoginCodeOptions struct {
	Email     string
	CodeHash  string
	ExpiresAt time.Time
	At        time.Time
}

// CountLoginCodesOptions counts codes sent to Email since Since.
type CountLoginCodesOptions struct {
	Email string
	Since time.Time
}
