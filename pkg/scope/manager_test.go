package scope

import (
	"context"
	"errors"
	"testing"
	"time"

	"daily-three/internal/model"
)

func TestCreateAndVerify(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := newManager("secret", time.Hour, func() time.Time { return now })

	token, sc, err := m.CreateToken(model.Scope{UserID: "u1", Email: "a@b.co"})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if sc.TokenID == "" || !sc.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Errorf("unexpected issued scope: %+v", sc)
	}

	got, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got.UserID != "u1" || got.Email != "a@b.co" || got.TokenID != sc.TokenID {
		t.Errorf("unexpected verified scope: %+v", got)
	}
}

func TestVerifyRejects(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	m := newManager("secret", time.Hour, func() time.Time { return clock })

	token, sc, _ := m.CreateToken(model.Scope{UserID: "u1"})

	t.Run("Wrong secret", func(t *testing.T) {
		other := newManager("other", time.Hour, func() time.Time { return clock })
		if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := m.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("Revoked", func(t *testing.T) {
		m.Revoke(sc)
		if _, err := m.Verify(token); !errors.Is(err, ErrRevokedToken) {
			t.Errorf("expected ErrRevokedToken, got %v", err)
		}
	})

	t.Run("Expired", func(t *testing.T) {
		fresh, _, _ := m.CreateToken(model.Scope{UserID: "u2"})
		clock = now.Add(2 * time.Hour)
		if _, err := m.Verify(fresh); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestCreateTokenRequiresUser(t *testing.T) {
	m := New("secret", time.Hour)
	if _, _, err := m.CreateToken(model.Scope{}); err == nil {
		t.Error("expected error for empty user id")
	}
}

func TestContext(t *testing.T) {
	ctx := WithScope(context.Background(), model.Scope{UserID: "u1"})
	sc, ok := FromContext(ctx)
	if !ok || sc.UserID != "u1" {
		t.Errorf("unexpected scope from context: %+v %v", sc, ok)
	}
	if _, ok := FromContext(context.Background()); ok {
		t.Error("expected no scope in empty context")
	}
}
