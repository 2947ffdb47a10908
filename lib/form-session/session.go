package formsession

import (
	jobdescmodels "jd-generator/models/api/jobdesc"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/pkg/errors"
)

const (
	fieldKeyPrefix = "field:"
	descriptionKey = "description"
	generatedKey   = "generated"
)

var Store *session.Store

func Init() {
	Store = session.New(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// State состояние формы одной пользовательской сессии
type State struct {
	sess        *session.Session
	Fields      *jobdescmodels.FieldSet
	Description string
	Generated   bool
}

func Load(c *fiber.Ctx, profile jobdescmodels.Profile) (*State, error) {
	if Store == nil {
		return nil, errors.New("хранилище сессий не инициализировано")
	}
	sess, err := Store.Get(c)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения сессии")
	}
	state := &State{
		sess:   sess,
		Fields: jobdescmodels.NewFieldSet(profile),
	}
	for _, name := range profile.Names() {
		if value, ok := sess.Get(fieldKeyPrefix + string(name)).(string); ok {
			_ = state.Fields.Set(name, value)
		}
	}
	state.Description, _ = sess.Get(descriptionKey).(string)
	state.Generated, _ = sess.Get(generatedKey).(bool)
	return state, nil
}

func (s *State) SetDescription(text string) {
	s.Description = text
	s.Generated = true
}

// ClearDescription сбрасывает результат прошлой генерации
func (s *State) ClearDescription() {
	s.Description = ""
	s.Generated = false
}

func (s *State) Save() error {
	for name, value := range s.Fields.Values() {
		s.sess.Set(fieldKeyPrefix+string(name), value)
	}
	s.sess.Set(descriptionKey, s.Description)
	s.sess.Set(generatedKey, s.Generated)
	if err := s.sess.Save(); err != nil {
		return errors.Wrap(err, "ошибка сохранения сессии")
	}
	return nil
}
