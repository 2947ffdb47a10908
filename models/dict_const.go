package models

type JobType string

const (
	JobTypeFullTime JobType = "Full-time"
	JobTypePartTime JobType = "Part-time"
	JobTypeContract JobType = "Contract"
)

var JobTypes = []JobType{JobTypeFullTime, JobTypePartTime, JobTypeContract}

type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "Junior"
	ExperienceMiddle ExperienceLevel = "Mid-level"
	ExperienceSenior ExperienceLevel = "Senior"
)

var ExperienceLevels = []ExperienceLevel{ExperienceJunior, ExperienceMiddle, ExperienceSenior}

// FormVariant условие запуска генерации
type FormVariant string

const (
	FormVariantSubmit FormVariant = "submit" // по кнопке Submit
	FormVariantAuto   FormVariant = "auto"   // как только заполнены все поля
)

func (v FormVariant) IsValid() bool {
	return v == FormVariantSubmit || v == FormVariantAuto
}
