package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"daily-three/internal/auth"
	"daily-three/internal/middleware"
	"daily-three/internal/model"
	pkgErrors "daily-three/pkg/errors"
	"daily-three/pkg/log"
	"daily-three/pkg/scope"
)

type mockUseCase struct {
	sendCodeFunc   func(auth.SendCodeInput) (auth.SendCodeOutput, error)
	verifyCodeFunc func(auth.VerifyCodeInput) (auth.VerifyCodeOutput, error)
	signOutFunc    func(model.Scope) error
	meFunc         func(model.Scope) (auth.MeOutput, error)
}

func (m *mockUseCase) SendCode(ctx context.Context, in auth.SendCodeInput) (auth.SendCodeOutput, error) {
	return m.sendCodeFunc(in)
}

func (m *mockUseCase) VerifyCode(ctx context.Context, in auth.VerifyCodeInput) (auth.VerifyCodeOutput, error) {
	return m.verifyCodeFunc(in)
}

func (m *mockUseCase) SignOut(ctx context.Context, sc model.Scope) error {
	return m.signOutFunc(sc)
}

func (m *mockUseCase) Me(ctx context.Context, sc model.Scope) (auth.MeOutput, error) {
	return m.meFunc(sc)
}

type testEnv struct {
	router *gin.Engine
	token  string
	scope  model.Scope
}

func newTestEnv(t *testing.T, uc auth.UseCase) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := scope.New("secret", time.Hour)
	token, sc, err := tokens.CreateToken(model.Scope{UserID: "u1", Email: "a@b.co"})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	r := gin.New()
	mw := middleware.New(log.NewNop(), tokens, middleware.Config{SendCodeRatePerMin: 600})
	RegisterRoutes(r.Group("/api/v1/auth"), New(log.NewNop(), uc), mw)
	return testEnv{router: r, token: token, scope: sc}
}

func (e testEnv) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var env struct {
		ErrorCode int    `json:"error_code"`
		Message   string `json:"message"`
		Data      T      `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return env.Data
}

func TestSendCode(t *testing.T) {
	expires := time.Date(2024, 6, 1, 9, 10, 0, 0, time.UTC)
	var got auth.SendCodeInput
	uc := &mockUseCase{sendCodeFunc: func(in auth.SendCodeInput) (auth.SendCodeOutput, error) {
		got = in
		if in.Email == "busy@b.co" {
			return auth.SendCodeOutput{}, auth.ErrResendThrottled
		}
		return auth.SendCodeOutput{Email: in.Email, ExpiresAt: expires}, nil
	}}
	env := newTestEnv(t, uc)

	w := env.do(http.MethodPost, "/api/v1/auth/code", map[string]string{"email": "a@b.co"}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	resp := decode[sendCodeResp](t, w)
	if got.Email != "a@b.co" || !resp.ExpiresAt.Equal(expires) {
		t.Errorf("input %+v, resp %+v", got, resp)
	}

	if w := env.do(http.MethodPost, "/api/v1/auth/code", map[string]string{"email": "nope"}, false); w.Code != http.StatusBadRequest {
		t.Errorf("invalid email status = %d", w.Code)
	}
	if w := env.do(http.MethodPost, "/api/v1/auth/code", map[string]string{"email": "busy@b.co"}, false); w.Code != http.StatusTooManyRequests {
		t.Errorf("throttled status = %d", w.Code)
	}
}

func TestVerifyCode(t *testing.T) {
	uc := &mockUseCase{verifyCodeFunc: func(in auth.VerifyCodeInput) (auth.VerifyCodeOutput, error) {
		switch in.Code {
		case "123456":
			return auth.VerifyCodeOutput{Session: auth.Session{
				Token: "tok",
				User:  auth.User{ID: "u1", Email: in.Email},
			}}, nil
		case "000000":
			return auth.VerifyCodeOutput{}, auth.ErrCodeExpired
		default:
			return auth.VerifyCodeOutput{}, auth.ErrCodeInvalid
		}
	}}
	env := newTestEnv(t, uc)

	w := env.do(http.MethodPost, "/api/v1/auth/verify", map[string]string{"email": "a@b.co", "code": "123456"}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if s := decode[sessionResp](t, w); s.Token != "tok" || s.User.ID != "u1" {
		t.Errorf("session = %+v", s)
	}

	for code, want := range map[string]int{"000000": http.StatusUnauthorized, "999999": http.StatusUnauthorized} {
		if w := env.do(http.MethodPost, "/api/v1/auth/verify", map[string]string{"email": "a@b.co", "code": code}, false); w.Code != want {
			t.Errorf("code %s status = %d, want %d", code, w.Code, want)
		}
	}
	if w := env.do(http.MethodPost, "/api/v1/auth/verify", map[string]string{"email": "a@b.co"}, false); w.Code != http.StatusBadRequest {
		t.Errorf("missing code status = %d", w.Code)
	}
}

func TestSignOutAndMe(t *testing.T) {
	var signedOut model.Scope
	uc := &mockUseCase{
		signOutFunc: func(sc model.Scope) error { signedOut = sc; return nil },
		meFunc: func(sc model.Scope) (auth.MeOutput, error) {
			return auth.MeOutput{User: auth.User{ID: sc.UserID, Email: sc.Email}}, nil
		},
	}
	env := newTestEnv(t, uc)

	if w := env.do(http.MethodGet, "/api/v1/auth/me", nil, false); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous me status = %d", w.Code)
	}

	w := env.do(http.MethodGet, "/api/v1/auth/me", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d", w.Code)
	}
	if me := decode[meResp](t, w); me.User.ID != "u1" || me.User.Email != "a@b.co" {
		t.Errorf("me = %+v", me)
	}

	if w := env.do(http.MethodPost, "/api/v1/auth/sign-out", nil, true); w.Code != http.StatusOK {
		t.Fatalf("sign-out status = %d", w.Code)
	}
	if signedOut.TokenID != env.scope.TokenID {
		t.Errorf("signed out %+v, want token %s", signedOut, env.scope.TokenID)
	}
}

func TestMapError(t *testing.T) {
	h := New(log.NewNop(), &mockUseCase{})
	tests := []struct {
		err  error
		code int
	}{
		{auth.ErrInvalidEmail, http.StatusBadRequest},
		{auth.ErrCodeInvalid, http.StatusUnauthorized},
		{auth.ErrCodeExpired, http.StatusUnauthorized},
		{auth.ErrTooManyAttempts, http.StatusTooManyRequests},
		{auth.ErrResendThrottled, http.StatusTooManyRequests},
		{auth.ErrUserNotFound, http.StatusNotFound},
		{auth.ErrCodeDelivery, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		httpErr, ok := pkgErrors.AsHTTPError(h.mapError(tt.err))
		if !ok || httpErr.Code != tt.code {
			t.Errorf("mapError(%v) = %v, want %d", tt.err, httpErr, tt.code)
		}
	}
}
