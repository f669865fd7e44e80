//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/guttosm/portfolio-service/internal/localization"
)

func TestCatalog_EveryKeyInBothLanguages(t *testing.T) {
	keys := []string{
		ErrKeyInvalidRequest, ErrKeyInternalError,
		ErrKeyInvalidCredentials, ErrKeyNotFound, ErrKeyRateLimitExceeded,
		ErrKeyConflict, ErrKeyInvalidToken, ErrKeyTokenRequired,
		ErrKeyUnknownContent, ErrKeyTranslationMissing, ErrKeyUnsupportedLanguage,
		ErrKeyServiceUnavailable,
	}

	for _, lang := range localization.Supported {
		assert.Len(t, catalog[lang], len(keys), lang.String())
		for _, key := range keys {
			assert.NotEmpty(t, catalog[lang][key], "%s %s", lang, key)
		}
	}
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "english", key: ErrKeyUnknownContent, locale: "en", expected: "Wrong content key"},
		{name: "polish", key: ErrKeyUnknownContent, locale: "pl", expected: "Nieprawidłowy klucz treści"},
		{name: "polish by name", key: ErrKeyNotFound, locale: "polski", expected: "Nie znaleziono żądanej treści"},
		{name: "polish region tag", key: ErrKeyConflict, locale: "pl-PL", expected: "Treść jest sprzeczna z zapisanymi danymi"},
		{name: "empty locale reads english", key: ErrKeyNotFound, locale: "", expected: "Couldn't find requested content"},
		{name: "unsupported locale reads english", key: ErrKeyInvalidToken, locale: "de", expected: "Invalid or expired token"},
		{name: "unknown key comes back unchanged", key: "error.teapot", locale: "pl", expected: "error.teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		acceptLanguage string
		expected       string
	}{
		{acceptLanguage: "", expected: DefaultLocale},
		{acceptLanguage: "pl", expected: "pl"},
		{acceptLanguage: "pl-PL,pl;q=0.9,en;q=0.8", expected: "pl"},
		{acceptLanguage: "en-US,en;q=0.9,pl;q=0.8", expected: "en"},
		{acceptLanguage: "fr-CA,fr;q=0.9", expected: DefaultLocale},
		{acceptLanguage: "PL", expected: "pl"},
		{acceptLanguage: ";;;", expected: DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.acceptLanguage, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/main", nil)
			if tt.acceptLanguage != "" {
				c.Request.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}
