package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/logger"
)

// ErrorHandler logs the errors handlers attached with c.Error. A handler
// that attached an error without writing a response gets a localized 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		written := c.Writer.Written()
		status := c.Writer.Status()
		if !written {
			status = http.StatusInternalServerError
		}

		errs := make([]error, len(c.Errors))
		for i, e := range c.Errors {
			errs[i] = e
		}
		level := zerolog.WarnLevel
		if status >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}
		logger.FromContext(c.Request.Context()).WithLevel(level).
			Errs("errors", errs).
			Int("status_code", status).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")

		if !written {
			abortInternal(c)
		}
	}
}

// abortInternal writes the localized internal error envelope.
func abortInternal(c *gin.Context) {
	message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		dto.NewError(dto.ErrCodeInternal, message, GetRequestID(c)))
}
