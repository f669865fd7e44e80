package i18n

// Message keys of the error envelopes and error pages. Every key has an
// entry in each catalog language.
const (
	ErrKeyInvalidRequest      = "error.invalid_request"
	ErrKeyInternalError       = "error.internal_error"
	ErrKeyInvalidCredentials  = "error.invalid_credentials"
	ErrKeyInvalidToken        = "error.invalid_token"
	ErrKeyTokenRequired       = "error.token_required"
	ErrKeyNotFound            = "error.not_found"
	ErrKeyConflict            = "error.conflict"
	ErrKeyRateLimitExceeded   = "error.rate_limit_exceeded"
	ErrKeyServiceUnavailable  = "error.service_unavailable"
	ErrKeyUnknownContent      = "error.unknown_content"
	ErrKeyTranslationMissing  = "error.translation_missing"
	ErrKeyUnsupportedLanguage = "error.unsupported_language"
)
