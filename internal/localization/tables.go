package localization

import "github.com/guttosm/portfolio-service/internal/domain/model"

var sectionLabels = map[Language]map[model.SectionKey]string{
	English: {
		model.SectionAboutMe:         string(model.SectionAboutMe),
		model.SectionProjects:        string(model.SectionProjects),
		model.SectionTechnicalSkills: string(model.SectionTechnicalSkills),
		model.SectionWorkExperience:  string(model.SectionWorkExperience),
		model.SectionEducation:       string(model.SectionEducation),
		model.SectionLanguages:       string(model.SectionLanguages),
		model.SectionSoftSkills:      string(model.SectionSoftSkills),
		model.SectionInterests:       string(model.SectionInterests),
		model.SectionContact:         string(model.SectionContact),
	},
	Polish: {
		model.SectionAboutMe:         "O mnie",
		model.SectionProjects:        "Moje projekty",
		model.SectionTechnicalSkills: "Umiejętności techniczne",
		model.SectionWorkExperience:  "Doświadczenie zawodowe",
		model.SectionEducation:       "Edukacja",
		model.SectionLanguages:       "Języki",
		model.SectionSoftSkills:      "Umiejętności miękkie",
		model.SectionInterests:       "Zainteresowania",
		model.SectionContact:         "Kontakt",
	},
}

// locationOverrides replaces Experience.Location per language and experience type.
var locationOverrides = map[Language]map[string]string{
	Polish: {
		model.ExperienceEducation: "Uniwersytet Śląski, Katowice",
	},
}
