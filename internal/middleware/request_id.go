// Package middleware provides the gin middleware of the portfolio service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guttosm/portfolio-service/internal/logger"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey       = "request_id"
	maxRequestIDLength = 128
)

// RequestID tags every request with an ID. A client supplied X-Request-ID
// is kept when it is at most 128 bytes of visible ASCII, otherwise a UUID
// v4 is generated. The ID is echoed in the response and attached to the
// logger stored in the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !isVisibleASCII(id, maxRequestIDLength) {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		scoped := logger.Logger().With().Str(requestIDKey, id).Logger()
		c.Request = c.Request.WithContext(logger.Into(c.Request.Context(), scoped))
		c.Next()
	}
}

// GetRequestID returns the ID set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func isVisibleASCII(s string, maxLen int) bool {
	if s == "" || len(s) > maxLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}
