// Package kvstore holds small pieces of device-local state, such as the
// last local date on which the daily reset ran.
package kvstore

import (
	"errors"
	"regexp"
)

// ErrInvalidKey is returned for keys that are empty or contain characters
// other than letters, digits, '-', '_' and '.'.
var ErrInvalidKey = errors.New("kvstore: invalid key")

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,200}$`)

// Store is a synchronous string key/value store.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// ValidKey reports whether key can be stored.
func ValidKey(key string) bool {
	return keyPattern.MatchString(key)
}
