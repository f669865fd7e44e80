package model

import (
	"bytes"
	"encoding/json"
)

// SectionKey names a portfolio section. The English label doubles as the key.
type SectionKey string

const (
	SectionAboutMe         SectionKey = "About me"
	SectionProjects        SectionKey = "My projects"
	SectionTechnicalSkills SectionKey = "Technical skills"
	SectionWorkExperience  SectionKey = "Work experience"
	SectionEducation       SectionKey = "Education"
	SectionLanguages       SectionKey = "Languages"
	SectionSoftSkills      SectionKey = "Soft skills"
	SectionInterests       SectionKey = "Interests"
	SectionContact         SectionKey = "Contact"
)

// SectionDefinition binds a section to the entities it lists.
// An empty Tag selects every entity of the kind.
type SectionDefinition struct {
	Key  SectionKey
	Kind Kind
	Tag  string
}

// SectionLayout is the fixed order of sections returned by GetAll.
var SectionLayout = []SectionDefinition{
	{Key: SectionAboutMe, Kind: KindSoftSkill, Tag: SoftSkillAboutMe},
	{Key: SectionProjects, Kind: KindMyProject},
	{Key: SectionTechnicalSkills, Kind: KindTechnology},
	{Key: SectionWorkExperience, Kind: KindExperience, Tag: ExperienceWork},
	{Key: SectionEducation, Kind: KindExperience, Tag: ExperienceEducation},
	{Key: SectionLanguages, Kind: KindSoftSkill, Tag: SoftSkillLanguage},
	{Key: SectionSoftSkills, Kind: KindSoftSkill, Tag: SoftSkillSoft},
	{Key: SectionInterests, Kind: KindSoftSkill, Tag: SoftSkillInterest},
}

// Section is a labelled group of entities.
type Section struct {
	Key   SectionKey
	Items []Content
}

// Sections is an ordered list of sections. It marshals to a JSON object
// whose keys keep the slice order.
type Sections []Section

// MarshalJSON implements json.Marshaler.
func (s Sections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, section := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(section.Key))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		items := section.Items
		if items == nil {
			items = []Content{}
		}
		val, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
