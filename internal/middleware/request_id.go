package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the generated request id.
const RequestIDKey = "request_id"

// RequestIDHeader is echoed back so callers can correlate logs.
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a uuid, reusing the caller's header value
// when present.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}
