package middleware

import (
	"daily-three/pkg/log"
	"daily-three/pkg/scope"
)

// Config tunes the HTTP middlewares.
type Config struct {
	// SendCodeRatePerMin bounds login-code requests per client IP.
	SendCodeRatePerMin int
	AllowedOrigins     []string
}

type Middleware struct {
	l         log.Logger
	tokens    scope.Manager
	limiter   *rateLimiter
	origins   map[string]struct{}
	anyOrigin bool
}

func New(l log.Logger, tokens scope.Manager, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		tokens:  tokens,
		limiter: newRateLimiter(cfg.SendCodeRatePerMin),
		origins: make(map[string]struct{}, len(cfg.AllowedOrigins)),
	}
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			mw.anyOrigin = true
			continue
		}
		mw.origins[o] = struct{}{}
	}
	return mw
}
