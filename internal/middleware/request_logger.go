package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/logger"
	"github.com/guttosm/portfolio-service/internal/service"
)

// unauditedPrefixes are infrastructure paths logged to stdout only.
var unauditedPrefixes = []string{"/healthz", "/readyz", "/metrics", "/static/", "/swagger/"}

// RequestLogger writes one line per request through the context logger
// set by RequestID. When loggingService is set, requests outside the
// infrastructure paths are also stored in the audit trail.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		level := statusLevel(status)
		path := c.Request.URL.Path

		logger.FromContext(c.Request.Context()).WithLevel(level).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status_code", status).
			Dur("elapsed", elapsed).
			Str("ip", c.ClientIP()).
			Str("subject", GetSubject(c)).
			Msg("HTTP request")

		if loggingService == nil || !audited(path) {
			return
		}
		enqueue(loggingService, &model.LogEntry{
			Timestamp:  start,
			Level:      level.String(),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       path,
			StatusCode: status,
			Duration:   elapsed.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Subject:    GetSubject(c),
		})
	}
}

func audited(path string) bool {
	for _, prefix := range unauditedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// enqueue hands entry to the async logger, or writes it from a goroutine
// when none is running.
func enqueue(loggingService service.LoggingService, entry *model.LogEntry) {
	if asyncLogger := GetAsyncLogger(); asyncLogger != nil {
		asyncLogger.Log(entry)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

func statusLevel(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
