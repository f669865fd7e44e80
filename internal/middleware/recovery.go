package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfolio-service/internal/logger"
)

// Recovery turns a handler panic into a localized 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Handler panicked")
		abortInternal(c)
	})
}
