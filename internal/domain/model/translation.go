package model

// Supported content languages.
const (
	LanguageEnglish = "en"
	LanguagePolish  = "pl"
)

// Translation holds the language specific title and text of an entity.
// Rows reference their owner by (ObjectType, ObjectID); there is no
// database foreign key because the owner table depends on ObjectType.
type Translation struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,omitempty"`
	ObjectID   int64  `gorm:"column:object_id;not null;uniqueIndex:idx_translations_object_language,priority:1" json:"object_id,omitempty"`
	ObjectType string `gorm:"column:object_type;size:20;not null;uniqueIndex:idx_translations_object_language,priority:2" json:"object_type,omitempty"`
	Language   string `gorm:"column:language;size:8;not null;uniqueIndex:idx_translations_object_language,priority:3" json:"language,omitempty"`
	Title      string `gorm:"column:title;size:255" json:"title,omitempty"`
	Text       string `gorm:"column:text;type:text" json:"text,omitempty"`
}

func (Translation) TableName() string { return "Translations" }

// ForLanguage returns the first translation in the given language.
func ForLanguage(translations []Translation, language string) (Translation, bool) {
	for _, tr := range translations {
		if tr.Language == language {
			return tr, true
		}
	}
	return Translation{}, false
}
