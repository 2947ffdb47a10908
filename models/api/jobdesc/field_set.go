package jobdescmodels

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ErrIncompleteForm = errors.New("please fill in all fields before submitting")

// FieldSet значения полей формы. Отсутствующий ключ = значение не задано
type FieldSet struct {
	profile Profile
	values  map[FieldName]string
}

func NewFieldSet(profile Profile) *FieldSet {
	return &FieldSet{
		profile: profile,
		values:  map[FieldName]string{},
	}
}

func (s *FieldSet) Profile() Profile {
	return s.profile
}

func (s *FieldSet) Set(name FieldName, value string) error {
	if !s.profile.Has(name) {
		return errors.Errorf("unknown field %q for profile %s", name, s.profile.Name)
	}
	s.values[name] = value
	return nil
}

func (s *FieldSet) Get(name FieldName) (string, bool) {
	value, ok := s.values[name]
	return value, ok
}

// Value значение поля, для незаданного пустая строка
func (s *FieldSet) Value(name FieldName) string {
	return s.values[name]
}

func (s *FieldSet) MissingFields() []FieldName {
	missing := []FieldName{}
	for _, name := range s.profile.Names() {
		if s.values[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func (s *FieldSet) IsComplete() bool {
	return len(s.MissingFields()) == 0
}

func (s *FieldSet) Validate() error {
	missing := s.MissingFields()
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, 0, len(missing))
	for _, name := range missing {
		names = append(names, string(name))
	}
	return errors.Wrap(ErrIncompleteForm, fmt.Sprintf("missing: %s", strings.Join(names, ", ")))
}

// Values копия заданных значений
func (s *FieldSet) Values() map[FieldName]string {
	result := make(map[FieldName]string, len(s.values))
	for k, v := range s.values {
		result[k] = v
	}
	return result
}
