package prompt

import (
	"bytes"
	"embed"
	"text/template"

	jobdescmodels "jd-generator/models/api/jobdesc"

	"github.com/pkg/errors"
)

const SystemInstruction = "You are a professional HR assistant skilled in writing job descriptions."

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = map[jobdescmodels.ProfileName]*template.Template{
	jobdescmodels.ProfileFull:  mustParse("full"),
	jobdescmodels.ProfileBasic: mustParse("basic"),
}

func mustParse(name string) *template.Template {
	return template.Must(template.New(name+".tmpl").
		Option("missingkey=error").
		ParseFS(templateFS, "templates/"+name+".tmpl"))
}

// Build подставляет значения полей в шаблон профиля как есть, без экранирования
func Build(fields *jobdescmodels.FieldSet) (string, error) {
	if fields == nil {
		return "", jobdescmodels.ErrIncompleteForm
	}
	if err := fields.Validate(); err != nil {
		return "", err
	}
	tpl, ok := templates[fields.Profile().Name]
	if !ok {
		return "", errors.Errorf("нет шаблона промпта для профиля %s", fields.Profile().Name)
	}
	data := map[string]string{}
	for name, value := range fields.Values() {
		data[string(name)] = value
	}
	buf := new(bytes.Buffer)
	if err := tpl.Execute(buf, data); err != nil {
		return "", errors.Wrap(err, "ошибка сборки промпта")
	}
	return buf.String(), nil
}
