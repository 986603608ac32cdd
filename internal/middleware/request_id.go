package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"daily-three/pkg/log"
)

const headerRequestID = "X-Request-ID"

// RequestID tags every request with an id that the logger picks up from the context.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
