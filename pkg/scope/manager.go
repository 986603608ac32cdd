package scope

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"daily-three/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrRevokedToken = errors.New("token has been revoked")
)

const maxRevokedTokens = 10000

// Manager issues and verifies session tokens.
type Manager interface {
	CreateToken(sc model.Scope) (string, model.Scope, error)
	Verify(token string) (model.Scope, error)
	Revoke(sc model.Scope)
}

// Claims is the JWT payload of a session token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type implManager struct {
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
	revoked *expirable.LRU[string, struct{}]
}

// New creates an HS256 token Manager. Revoked token ids are remembered for ttl,
// which is the longest a token can stay valid anyway.
func New(secret string, ttl time.Duration) Manager {
	return newManager(secret, ttl, time.Now)
}

func newManager(secret string, ttl time.Duration, now func() time.Time) *implManager {
	return &implManager{
		secret:  []byte(secret),
		ttl:     ttl,
		now:     now,
		revoked: expirable.NewLRU[string, struct{}](maxRevokedTokens, nil, ttl),
	}
}

func (m *implManager) CreateToken(sc model.Scope) (string, model.Scope, error) {
	if sc.UserID == "" {
		return "", model.Scope{}, errors.New("scope: user id is required")
	}

	issuedAt := m.now()
	sc.TokenID = uuid.NewString()
	sc.ExpiresAt = issuedAt.Add(m.ttl)

	claims := Claims{
		Email: sc.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sc.TokenID,
			Subject:   sc.UserID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(sc.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", model.Scope{}, fmt.Errorf("scope: sign token: %w", err)
	}
	return token, sc, nil
}

func (m *implManager) Verify(tokenStr string) (model.Scope, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return model.Scope{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return model.Scope{}, ErrInvalidToken
	}
	if _, revoked := m.revoked.Get(claims.ID); revoked {
		return model.Scope{}, ErrRevokedToken
	}

	return model.Scope{
		UserID:    claims.Subject,
		Email:     claims.Email,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (m *implManager) Revoke(sc model.Scope) {
	if sc.TokenID == "" {
		return
	}
	m.revoked.Add(sc.TokenID, struct{}{})
}

type ctxKey struct{}

// WithScope stores sc in ctx.
func WithScope(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, sc)
}

// FromContext returns the scope stored by WithScope.
func FromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ctxKey{}).(model.Scope)
	return sc, ok
}
