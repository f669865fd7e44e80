// Package i18n localizes the messages of API errors and error pages.
package i18n

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/portfolio-service/internal/localization"
)

const (
	// DefaultLocale is used when a request names no supported language.
	DefaultLocale = string(localization.English)
	// AcceptLanguageHeader selects the response language.
	AcceptLanguageHeader = "Accept-Language"
)

var defaultTranslator = NewTranslator()

// Translator resolves message keys per content language.
type Translator struct {
	messages map[localization.Language]map[string]string
}

// NewTranslator creates a Translator over the built-in English and Polish catalog.
func NewTranslator() *Translator {
	return &Translator{messages: catalog}
}

// GetTranslator returns the shared Translator.
func GetTranslator() *Translator {
	return defaultTranslator
}

// Translate returns the message for key in locale. locale accepts anything
// localization.ParseLanguage does. Unknown locales read the English catalog
// and unknown keys come back unchanged.
func (t *Translator) Translate(key, locale string) string {
	lang, err := localization.ParseLanguage(locale)
	if err != nil {
		lang = localization.English
	}
	if msg, ok := t.messages[lang][key]; ok {
		return msg
	}
	if msg, ok := t.messages[localization.English][key]; ok {
		return msg
	}
	return key
}

// GetLocale picks en or pl from the Accept-Language header.
func GetLocale(c *gin.Context) string {
	return localization.MatchLanguage(c.GetHeader(AcceptLanguageHeader)).String()
}

var catalog = map[localization.Language]map[string]string{
	localization.English: {
		ErrKeyInvalidRequest:      "Invalid request",
		ErrKeyInternalError:       "An unexpected error occurred",
		ErrKeyInvalidCredentials:  "Could not verify",
		ErrKeyNotFound:            "Couldn't find requested content",
		ErrKeyRateLimitExceeded:   "Too many requests, please try again later",
		ErrKeyConflict:            "Content conflicts with stored data",
		ErrKeyInvalidToken:        "Invalid or expired token",
		ErrKeyTokenRequired:       "Authentication token is required",
		ErrKeyUnknownContent:      "Wrong content key",
		ErrKeyTranslationMissing:  "Content is not available in the requested language",
		ErrKeyUnsupportedLanguage: "Supported languages are english and polish",
		ErrKeyServiceUnavailable:  "Content store is temporarily unavailable",
	},
	localization.Polish: {
		ErrKeyInvalidRequest:      "Nieprawidłowe żądanie",
		ErrKeyInternalError:       "Wystąpił nieoczekiwany błąd",
		ErrKeyInvalidCredentials:  "Nie udało się zweryfikować",
		ErrKeyNotFound:            "Nie znaleziono żądanej treści",
		ErrKeyRateLimitExceeded:   "Zbyt wiele żądań, spróbuj ponownie później",
		ErrKeyConflict:            "Treść jest sprzeczna z zapisanymi danymi",
		ErrKeyInvalidToken:        "Nieprawidłowy lub wygasły token",
		ErrKeyTokenRequired:       "Wymagany jest token uwierzytelniający",
		ErrKeyUnknownContent:      "Nieprawidłowy klucz treści",
		ErrKeyTranslationMissing:  "Treść nie jest dostępna w wybranym języku",
		ErrKeyUnsupportedLanguage: "Obsługiwane języki to angielski i polski",
		ErrKeyServiceUnavailable:  "Magazyn treści jest chwilowo niedostępny",
	},
}
