package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"daily-three/internal/auth"
)

const defaultHashCost = bcrypt.DefaultCost

// normalizeEmail trims and lower-cases an address and rejects anything that
// is not a bare address.
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", auth.ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return "", auth.ErrInvalidEmail
	}
	return email, nil
}

// generateCode returns a uniformly random zero-padded numeric code.
func generateCode() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < auth.CodeLength; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", auth.CodeLength, n.Int64()), nil
}

func wellFormedCode(code string) bool {
	if len(code) != auth.CodeLength {
		return false
	}
	for _, ch := range code {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
