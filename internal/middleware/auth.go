package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"daily-three/pkg/response"
	"daily-three/pkg/scope"
)

// queryAccessToken carries the token for EventSource clients, which cannot set headers.
const queryAccessToken = "access_token"

// Auth verifies the bearer token and stores the user scope on the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			return
		}

		sc, err := m.tokens.Verify(token)
		if err != nil {
			if !errors.Is(err, scope.ErrInvalidToken) && !errors.Is(err, scope.ErrRevokedToken) {
				m.l.Errorf(ctx, "middleware.Auth.Verify: %v", err)
			}
			response.Unauthorized(c)
			return
		}

		c.Request = c.Request.WithContext(scope.WithScope(ctx, sc))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ""
		}
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(c.Query(queryAccessToken))
}
