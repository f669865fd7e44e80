package localization

import (
	"errors"
	"fmt"

	"github.com/guttosm/portfolio-service/internal/domain/model"
)

// ErrTranslationMissing is returned when an entity has translations but none
// in the requested language.
var ErrTranslationMissing = errors.New("translation missing")

// TranslationMissingError identifies the entity that could not be localized.
type TranslationMissingError struct {
	Kind     model.Kind
	ID       int64
	Language Language
}

func (e *TranslationMissingError) Error() string {
	return fmt.Sprintf("no %s translation for %s %d", e.Language, e.Kind, e.ID)
}

func (e *TranslationMissingError) Unwrap() error {
	return ErrTranslationMissing
}

// Item is one entity localized to a single language.
type Item struct {
	// Content is a copy of the entity with its translations cleared.
	Content model.Content
	Title   string
	Text    string
	// Language of the translation used; empty when the entity has none.
	Language Language
	// FallbackUsed is set when Title and Text come from the fallback language.
	FallbackUsed bool
	// Children holds the localized subtechnologies of a Technology.
	Children []Item
}

// Section is a labelled list of localized items.
type Section struct {
	Key   model.SectionKey
	Label string
	Items []Item
	// Placeholder marks sections with no stored content, such as Contact.
	Placeholder bool
}

// Page is the localized portfolio in section order.
type Page struct {
	Language Language
	Sections []Section
}

// Section returns the section with the given key.
func (p *Page) Section(key model.SectionKey) (Section, bool) {
	for _, s := range p.Sections {
		if s.Key == key {
			return s, true
		}
	}
	return Section{}, false
}

// Localizer collapses sections to one language.
type Localizer struct {
	labels    map[Language]map[model.SectionKey]string
	locations map[Language]map[string]string
	fallback  Language
}

// Option configures a Localizer.
type Option func(*Localizer)

// WithFallback makes the localizer use lang when an entity has no
// translation in the requested language.
func WithFallback(lang Language) Option {
	return func(l *Localizer) {
		l.fallback = lang
	}
}

// NewLocalizer creates a Localizer using the built-in label and location tables.
func NewLocalizer(opts ...Option) *Localizer {
	l := &Localizer{
		labels:    sectionLabels,
		locations: locationOverrides,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Label returns the label of a section in lang. Unknown keys are returned as is.
func (l *Localizer) Label(lang Language, key model.SectionKey) string {
	if label, ok := l.labels[lang][key]; ok {
		return label
	}
	return string(key)
}

// Localize returns sections in lang followed by the Contact placeholder.
// The input is not modified.
func (l *Localizer) Localize(sections model.Sections, lang Language) (*Page, error) {
	page := &Page{
		Language: lang,
		Sections: make([]Section, 0, len(sections)+1),
	}

	for _, s := range sections {
		items := make([]Item, 0, len(s.Items))
		for _, c := range s.Items {
			item, err := l.localizeItem(c, lang)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		page.Sections = append(page.Sections, Section{
			Key:   s.Key,
			Label: l.Label(lang, s.Key),
			Items: items,
		})
	}

	page.Sections = append(page.Sections, Section{
		Key:         model.SectionContact,
		Label:       l.Label(lang, model.SectionContact),
		Placeholder: true,
	})
	return page, nil
}

func (l *Localizer) localizeItem(c model.Content, lang Language) (Item, error) {
	tr, used, fellBack, err := l.pick(c, lang)
	if err != nil {
		return Item{}, err
	}

	copied := c.Clone()
	copied.SetTranslations(nil)
	item := Item{
		Content:      copied,
		Title:        tr.Title,
		Text:         tr.Text,
		Language:     used,
		FallbackUsed: fellBack,
	}

	switch v := copied.(type) {
	case *model.Experience:
		if loc, ok := l.locations[lang][v.TypeExp]; ok {
			v.Location = loc
		}
	case *model.Technology:
		item.Children = make([]Item, 0, len(v.Subtechnologies))
		for i := range v.Subtechnologies {
			child, err := l.localizeItem(&v.Subtechnologies[i], lang)
			if err != nil {
				return Item{}, err
			}
			item.Children = append(item.Children, child)
		}
		v.Subtechnologies = nil
	}
	return item, nil
}

// pick selects the translation of c for lang, falling back when configured.
func (l *Localizer) pick(c model.Content, lang Language) (model.Translation, Language, bool, error) {
	translations := c.GetTranslations()
	if len(translations) == 0 {
		return model.Translation{}, "", false, nil
	}
	if tr, ok := model.ForLanguage(translations, string(lang)); ok {
		return tr, lang, false, nil
	}
	if l.fallback != "" && l.fallback != lang {
		if tr, ok := model.ForLanguage(translations, string(l.fallback)); ok {
			return tr, l.fallback, true, nil
		}
	}
	return model.Translation{}, "", false, &TranslationMissingError{Kind: c.Kind(), ID: c.GetID(), Language: lang}
}
