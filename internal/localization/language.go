// Package localization turns stored portfolio sections into a single-language
// view: translations collapse to one record, section labels and selected
// fields are replaced from static tables, and a Contact section is appended.
package localization

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/guttosm/portfolio-service/internal/domain/model"
)

// Language is a supported content language.
type Language string

const (
	English Language = model.LanguageEnglish
	Polish  Language = model.LanguagePolish
)

// Supported lists the content languages in matcher preference order.
var Supported = []Language{English, Polish}

// ErrUnsupportedLanguage is returned for languages other than English and Polish.
var ErrUnsupportedLanguage = errors.New("unsupported language")

var (
	supportedTags = []language.Tag{language.English, language.Polish}
	matcher       = language.NewMatcher(supportedTags)
)

var aliases = map[string]Language{
	"en":      English,
	"english": English,
	"pl":      Polish,
	"polish":  Polish,
	"polski":  Polish,
}

// ParseLanguage resolves en, pl, english, polish or a BCP 47 tag such as pl-PL.
func ParseLanguage(s string) (Language, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if l, ok := aliases[v]; ok {
		return l, nil
	}

	tag, err := language.Parse(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	base, _ := tag.Base()
	if l, ok := aliases[base.String()]; ok {
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
}

// MatchLanguage picks the best supported language for an Accept-Language
// header. English is returned when nothing matches.
func MatchLanguage(acceptLanguage string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	return Supported[idx]
}

func (l Language) String() string {
	return string(l)
}

// Tag returns the BCP 47 tag of the language.
func (l Language) Tag() language.Tag {
	if l == Polish {
		return language.Polish
	}
	return language.English
}
