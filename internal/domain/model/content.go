// Package model defines the core domain entities for the portfolio service.
package model

import (
	"errors"
	"strings"
)

// Kind identifies one of the portfolio entity types.
type Kind string

const (
	KindSoftSkill     Kind = "SoftSkill"
	KindMyProject     Kind = "MyProject"
	KindTechnology    Kind = "Technology"
	KindSubtechnology Kind = "Subtechnology"
	KindExperience    Kind = "Experience"
)

// Kinds lists every entity kind in declaration order.
var Kinds = []Kind{KindSoftSkill, KindMyProject, KindTechnology, KindSubtechnology, KindExperience}

// ErrUnknownKind is returned when a discriminator names no entity kind.
var ErrUnknownKind = errors.New("unknown content kind")

// ParseKind resolves a discriminator such as "SoftSkill" or "softskill".
func ParseKind(discriminator string) (Kind, error) {
	d := strings.TrimSpace(discriminator)
	for _, k := range Kinds {
		if strings.EqualFold(d, string(k)) {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}

// ObjectType returns the tag used for this kind in Translation rows.
func (k Kind) ObjectType() string {
	return strings.ToLower(string(k))
}

func (k Kind) String() string {
	return string(k)
}

// Content is implemented by every translatable portfolio entity.
type Content interface {
	Kind() Kind
	GetID() int64
	GetTranslations() []Translation
	SetTranslations(translations []Translation)
	// Clone returns a shallow copy that can be modified without touching the receiver.
	Clone() Content
}

// Soft skill categories stored in SoftSkill.TypeSoft.
const (
	SoftSkillAboutMe  = "aboutme"
	SoftSkillLanguage = "language"
	SoftSkillSoft     = "soft skill"
	SoftSkillInterest = "interest"
)

// Experience categories stored in Experience.TypeExp.
const (
	ExperienceWork      = "work"
	ExperienceEducation = "education"
)

// SoftSkillTypes lists accepted SoftSkill.TypeSoft values.
var SoftSkillTypes = []string{SoftSkillAboutMe, SoftSkillLanguage, SoftSkillSoft, SoftSkillInterest}

// ExperienceTypes lists accepted Experience.TypeExp values.
var ExperienceTypes = []string{ExperienceWork, ExperienceEducation}

// SoftSkill is an about-me entry, spoken language, soft skill or interest.
type SoftSkill struct {
	ID           int64         `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,omitempty"`
	TypeSoft     string        `gorm:"column:type_soft;size:20;not null;index" json:"type_soft,omitempty"`
	Translations []Translation `gorm:"-" json:"translations,omitempty"`
}

func (SoftSkill) TableName() string { return "Softskills" }

func (s *SoftSkill) Kind() Kind                       { return KindSoftSkill }
func (s *SoftSkill) GetID() int64                     { return s.ID }
func (s *SoftSkill) GetTranslations() []Translation   { return s.Translations }
func (s *SoftSkill) SetTranslations(tr []Translation) { s.Translations = tr }

func (s *SoftSkill) Clone() Content {
	c := *s
	return &c
}

// MyProject is a showcased project.
type MyProject struct {
	ID                  int64         `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,omitempty"`
	SubtechnologiesUsed string        `gorm:"column:subtechnologies_used;size:255" json:"subtechnologies_used,omitempty"`
	ImagePath           string        `gorm:"column:image_path;size:255" json:"image_path,omitempty"`
	Link                string        `gorm:"column:link;size:255" json:"link,omitempty"`
	Translations        []Translation `gorm:"-" json:"translations,omitempty"`
}

func (MyProject) TableName() string { return "Projects" }

func (p *MyProject) Kind() Kind                       { return KindMyProject }
func (p *MyProject) GetID() int64                     { return p.ID }
func (p *MyProject) GetTranslations() []Translation   { return p.Translations }
func (p *MyProject) SetTranslations(tr []Translation) { p.Translations = tr }

func (p *MyProject) Clone() Content {
	c := *p
	return &c
}

// Technology groups subtechnologies under a unique name.
type Technology struct {
	ID              int64           `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,omitempty"`
	TechnologyName  string          `gorm:"column:technology_name;size:50;not null;uniqueIndex" json:"technology_name,omitempty"`
	Subtechnologies []Subtechnology `gorm:"foreignKey:TechnologyName;references:TechnologyName;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"subtechnologies,omitempty"`
	Translations    []Translation   `gorm:"-" json:"translations,omitempty"`
}

func (Technology) TableName() string { return "Technologies" }

func (t *Technology) Kind() Kind                       { return KindTechnology }
func (t *Technology) GetID() int64                     { return t.ID }
func (t *Technology) GetTranslations() []Translation   { return t.Translations }
func (t *Technology) SetTranslations(tr []Translation) { t.Translations = tr }

func (t *Technology) Clone() Content {
	c := *t
	if t.Subtechnologies != nil {
		c.Subtechnologies = make([]Subtechnology, len(t.Subtechnologies))
		copy(c.Subtechnologies, t.Subtechnologies)
	}
	return &c
}

// Subtechnology belongs to a Technology through its name. The link becomes
// NULL when the parent technology is deleted.
type Subtechnology struct {
	ID                int64         `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,omitempty"`
	TechnologyName    *string       `gorm:"column:technology_name;size:50;index" json:"technology_name,omitempty"`
	SubtechnologyName string        `gorm:"column:subtechnology_name;size:50;not null" json:"subtechnology_name,omitempty"`
	Translations      []Translation `gorm:"-" json:"translations,omitempty"`
}

func (Subtechnology) TableName() string { return "Subtechnologies" }

func (s *Subtechnology) Kind() Kind                       { return KindSubtechnology }
func (s *Subtechnology) GetID() int64                     { return s.ID }
func (s *Subtechnology) GetTranslations() []Translation   { return s.Translations }
func (s *Subtechnology) SetTranslations(tr []Translation) { s.Translations = tr }

func (s *Subtechnology) Clone() Content {
	c := *s
	return &c
}

// Experience is a work or education entry.
type Experience struct {
	ID           int64         `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,omitempty"`
	TypeExp      string        `gorm:"column:type_exp;size:20;not null;index" json:"type_exp,omitempty"`
	Location     string        `gorm:"column:location;size:255" json:"location,omitempty"`
	TimeRange    string        `gorm:"column:time_range;size:100" json:"time_range,omitempty"`
	Translations []Translation `gorm:"-" json:"translations,omitempty"`
}

func (Experience) TableName() string { return "Experiences" }

func (e *Experience) Kind() Kind                       { return KindExperience }
func (e *Experience) GetID() int64                     { return e.ID }
func (e *Experience) GetTranslations() []Translation   { return e.Translations }
func (e *Experience) SetTranslations(tr []Translation) { e.Translations = tr }

func (e *Experience) Clone() Content {
	c := *e
	return &c
}

// NewContent returns an empty entity of the given kind.
func NewContent(kind Kind) (Content, error) {
	switch kind {
	case KindSoftSkill:
		return &SoftSkill{}, nil
	case KindMyProject:
		return &MyProject{}, nil
	case KindTechnology:
		return &Technology{}, nil
	case KindSubtechnology:
		return &Subtechnology{}, nil
	case KindExperience:
		return &Experience{}, nil
	default:
		return nil, ErrUnknownKind
	}
}

// Models returns every persisted model, parents before children.
func Models() []interface{} {
	return []interface{}{
		&SoftSkill{},
		&MyProject{},
		&Technology{},
		&Subtechnology{},
		&Experience{},
		&Translation{},
	}
}
