package jobdescmodels

import (
	"jd-generator/models"
)

type FieldName string

const (
	FieldCompanyName     FieldName = "company_name"
	FieldJobType         FieldName = "job_type"
	FieldTechStack       FieldName = "tech_stack"
	FieldExperience      FieldName = "experience"
	FieldFunctionalities FieldName = "functionalities"
	FieldLocation        FieldName = "location"
	FieldRemark          FieldName = "remark"
)

type FieldKind string

const (
	FieldKindText   FieldKind = "text"
	FieldKindChoice FieldKind = "choice"
)

type FieldDef struct {
	Name     FieldName `json:"name"`
	Question string    `json:"question"`          // подпись поля в форме
	Kind     FieldKind `json:"kind"`              // text/choice
	Options  []string  `json:"options,omitempty"` // варианты для choice
}

type ProfileName string

const (
	ProfileFull  ProfileName = "full"
	ProfileBasic ProfileName = "basic"
)

// Profile фиксированный упорядоченный набор полей формы
type Profile struct {
	Name   ProfileName `json:"name"`
	Fields []FieldDef  `json:"fields"`
}

func (p Profile) Has(name FieldName) bool {
	_, ok := p.Field(name)
	return ok
}

func (p Profile) Field(name FieldName) (FieldDef, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

func (p Profile) Names() []FieldName {
	result := make([]FieldName, 0, len(p.Fields))
	for _, f := range p.Fields {
		result = append(result, f.Name)
	}
	return result
}

var (
	companyNameDef = FieldDef{
		Name:     FieldCompanyName,
		Question: "What is the company name?",
		Kind:     FieldKindText,
	}
	jobTypeDef = FieldDef{
		Name:     FieldJobType,
		Question: "What type of job is this?",
		Kind:     FieldKindChoice,
		Options:  jobTypeOptions(),
	}
	techStackDef = FieldDef{
		Name:     FieldTechStack,
		Question: "What technical stack is required (e.g., Python, React, AWS)?",
		Kind:     FieldKindText,
	}
	experienceDef = FieldDef{
		Name:     FieldExperience,
		Question: "What level of experience is needed?",
		Kind:     FieldKindChoice,
		Options:  experienceOptions(),
	}
	functionalitiesDef = FieldDef{
		Name:     FieldFunctionalities,
		Question: "What are the main functionalities or responsibilities?",
		Kind:     FieldKindText,
	}
	locationDef = FieldDef{
		Name:     FieldLocation,
		Question: "What is the job location?",
		Kind:     FieldKindText,
	}
	remarkDef = FieldDef{
		Name:     FieldRemark,
		Question: "Any additional remarks?",
		Kind:     FieldKindText,
	}
)

var profiles = map[ProfileName]Profile{
	ProfileFull: {
		Name: ProfileFull,
		Fields: []FieldDef{
			companyNameDef,
			jobTypeDef,
			experienceDef,
			techStackDef,
			functionalitiesDef,
			locationDef,
			remarkDef,
		},
	},
	ProfileBasic: {
		Name: ProfileBasic,
		Fields: []FieldDef{
			jobTypeDef,
			techStackDef,
			experienceDef,
			functionalitiesDef,
			locationDef,
		},
	},
}

func GetProfile(name ProfileName) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// DefaultProfile профиль формы по умолчанию для варианта запуска
func DefaultProfile(variant models.FormVariant) ProfileName {
	if variant == models.FormVariantAuto {
		return ProfileBasic
	}
	return ProfileFull
}

func jobTypeOptions() []string {
	result := make([]string, 0, len(models.JobTypes))
	for _, t := range models.JobTypes {
		result = append(result, string(t))
	}
	return result
}

func experienceOptions() []string {
	result := make([]string, 0, len(models.ExperienceLevels))
	for _, l := range models.ExperienceLevels {
		result = append(result, string(l))
	}
	return result
}
