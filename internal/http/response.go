package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfolio-service/internal/circuitbreaker"
	"github.com/guttosm/portfolio-service/internal/domain/dto"
	"github.com/guttosm/portfolio-service/internal/domain/model"
	"github.com/guttosm/portfolio-service/internal/i18n"
	"github.com/guttosm/portfolio-service/internal/localization"
	"github.com/guttosm/portfolio-service/internal/middleware"
	"github.com/guttosm/portfolio-service/internal/repository"
	"github.com/guttosm/portfolio-service/internal/service"
)

// Envelopes are pooled; gin serializes synchronously so they can be
// returned right after writing.
var (
	successPool = sync.Pool{New: func() any { return new(dto.SuccessResponse) }}
	errorPool   = sync.Pool{New: func() any { return new(dto.ErrorResponse) }}
)

// ResponseBuilder writes the JSON envelopes of one request.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a ResponseBuilder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success writes data in a success envelope.
func (b *ResponseBuilder) Success(statusCode int, data any) {
	resp := successPool.Get().(*dto.SuccessResponse)
	*resp = dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	}
	b.c.JSON(statusCode, resp)

	*resp = dto.SuccessResponse{}
	successPool.Put(resp)
}

// SuccessOK writes data with 200.
func (b *ResponseBuilder) SuccessOK(data any) {
	b.Success(http.StatusOK, data)
}

// Error aborts with statusCode and the localized message of messageKey.
// err, when set, is attached to the context for ErrorHandler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.abort(statusCode, b.translate(messageKey), nil, err)
}

// ErrorFrom aborts with the status and message StatusFor picks for err.
// Validation errors name the offending field in Details.
func (b *ResponseBuilder) ErrorFrom(err error) {
	status, key := StatusFor(err)

	var details map[string]string
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		details = map[string]string{verr.Field: verr.Message}
	}
	b.abort(status, b.translate(key), details, err)
}

func (b *ResponseBuilder) translate(key string) string {
	return i18n.GetTranslator().Translate(key, i18n.GetLocale(b.c))
}

func (b *ResponseBuilder) abort(statusCode int, message string, details map[string]string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}

	resp := errorPool.Get().(*dto.ErrorResponse)
	*resp = dto.ErrorResponse{
		Error:     dto.ErrCodeFromStatus(statusCode),
		Message:   message,
		Details:   details,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now(),
	}
	b.c.AbortWithStatusJSON(statusCode, resp)

	*resp = dto.ErrorResponse{}
	errorPool.Put(resp)
}

// StatusFor returns the HTTP status and i18n message key for err.
func StatusFor(err error) (int, string) {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, i18n.ErrKeyInvalidRequest
	case errors.Is(err, model.ErrUnknownKind):
		return http.StatusBadRequest, i18n.ErrKeyUnknownContent
	case errors.Is(err, localization.ErrUnsupportedLanguage):
		return http.StatusBadRequest, i18n.ErrKeyUnsupportedLanguage
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, i18n.ErrKeyInvalidToken
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, i18n.ErrKeyNotFound
	case errors.Is(err, localization.ErrTranslationMissing):
		return http.StatusNotFound, i18n.ErrKeyTranslationMissing
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, i18n.ErrKeyConflict
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		return http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable
	default:
		return http.StatusInternalServerError, i18n.ErrKeyInternalError
	}
}
