package jobdescmodels

import (
	"strings"

	"github.com/pkg/errors"
)

type FormRequest struct {
	Profile ProfileName          `json:"profile"` // full/basic, пусто = профиль по умолчанию
	Fields  map[FieldName]string `json:"fields"`  // значения полей формы
}

// FieldSet собирает набор полей, неизвестные для профиля поля считаются ошибкой
func (r FormRequest) FieldSet(defaultProfile ProfileName) (*FieldSet, error) {
	name := r.Profile
	if name == "" {
		name = defaultProfile
	}
	profile, ok := GetProfile(name)
	if !ok {
		return nil, errors.Errorf("unknown profile %q", name)
	}
	set := NewFieldSet(profile)
	for k, v := range r.Fields {
		if err := set.Set(k, v); err != nil {
			return nil, err
		}
	}
	return set, nil
}

type PromptResponse struct {
	Prompt string `json:"prompt"` // собранный промпт
}

type GenerateResponse struct {
	Description string `json:"description"` // сгенерированное описание вакансии либо текст ошибки генерации
	Prompt      string `json:"prompt"`
}

type SaveRequest struct {
	Description string `json:"description"` // текст для сохранения
}

func (r SaveRequest) Validate() error {
	if r.Description == "" {
		return errors.New("description must not be empty")
	}
	return nil
}

type SaveResponse struct {
	Path string `json:"path"` // путь к сохраненному файлу
}

type ExportRequest struct {
	FormRequest
	Description string `json:"description"`
}

func (r ExportRequest) Validate() error {
	if r.Description == "" {
		return errors.New("description must not be empty")
	}
	return nil
}

type SendRequest struct {
	Email       string `json:"email"`
	Description string `json:"description"`
}

func (r SendRequest) Validate() error {
	if len(strings.TrimSpace(r.Email)) == 0 || !strings.Contains(r.Email, "@") {
		return errors.New("email is invalid")
	}
	if r.Description == "" {
		return errors.New("description must not be empty")
	}
	return nil
}

type FieldsResponse struct {
	Profile Profile `json:"profile"`
	Variant string  `json:"variant"`
}
