package webcontrollers

import (
	"bytes"
	"embed"
	"html/template"

	"jd-generator/controllers"
	filestorage "jd-generator/lib/file-storage"
	formsession "jd-generator/lib/form-session"
	jobdeschandler "jd-generator/lib/jobdesc"
	"jd-generator/models"
	jobdescmodels "jd-generator/models/api/jobdesc"

	"github.com/gofiber/fiber/v2"
	"github.com/yuin/goldmark"
)

const (
	msgGenerating  = "All job details are filled. Generating job description..."
	msgIncomplete  = "Please fill in all fields before submitting."
	msgNothingSave = "Nothing to save yet. Generate a job description first."
)

//go:embed templates/form.html
var templateFS embed.FS

var formTemplate = template.Must(template.ParseFS(templateFS, "templates/form.html"))

type fieldView struct {
	Def   jobdescmodels.FieldDef
	Value string
}

type pageData struct {
	Auto            bool
	Fields          []fieldView
	Success         string
	Error           string
	Generated       bool
	DescriptionHTML template.HTML
}

type formController struct {
	controllers.BaseAPIController
	profile jobdescmodels.Profile
	variant models.FormVariant
}

func InitFormRouters(app *fiber.App, profile jobdescmodels.Profile, variant models.FormVariant) {
	controller := formController{
		profile: profile,
		variant: variant,
	}
	app.Get("/", controller.Show)
	app.Post("/form", controller.Update)
	app.Post("/form/save", controller.Save)
}

func (c *formController) Show(ctx *fiber.Ctx) error {
	state, err := formsession.Load(ctx, c.profile)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "session unavailable")
	}
	return c.render(ctx, state, "", "")
}

// Update сохраняет поля; генерация по Submit либо, в режиме auto, как только форма заполнена.
// Незаполненная форма сбрасывает прошлое описание
func (c *formController) Update(ctx *fiber.Ctx) error {
	state, err := formsession.Load(ctx, c.profile)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "session unavailable")
	}
	for _, name := range c.profile.Names() {
		_ = state.Fields.Set(name, ctx.FormValue(string(name)))
	}

	trigger := ctx.FormValue("action") == "submit"
	if c.variant == models.FormVariantAuto {
		trigger = state.Fields.IsComplete()
		if !trigger {
			state.ClearDescription()
		}
	}

	var success, failure string
	if trigger {
		if state.Fields.IsComplete() {
			success = msgGenerating
			resp, err := jobdeschandler.Instance.Generate(ctx.UserContext(), state.Fields)
			if err != nil {
				failure = err.Error()
				success = ""
			} else {
				state.SetDescription(resp.Description)
			}
		} else {
			// прошлое описание не показываем и не сохраняем
			state.ClearDescription()
			failure = msgIncomplete
		}
	}

	if err = state.Save(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "session unavailable")
	}
	return c.render(ctx, state, success, failure)
}

func (c *formController) Save(ctx *fiber.Ctx) error {
	state, err := formsession.Load(ctx, c.profile)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "session unavailable")
	}
	if !state.Generated {
		return c.render(ctx, state, "", msgNothingSave)
	}
	path, err := filestorage.Instance.Save(ctx.UserContext(), state.Description)
	if err != nil {
		c.GetLogger(ctx).WithError(err).Error("ошибка сохранения описания вакансии")
		return c.render(ctx, state, "", filestorage.SaveErrorMessage(err))
	}
	return c.render(ctx, state, "Job description saved to '"+path+"'", "")
}

func (c *formController) render(ctx *fiber.Ctx, state *formsession.State, success, failure string) error {
	data := pageData{
		Auto:      c.variant == models.FormVariantAuto,
		Fields:    make([]fieldView, 0, len(c.profile.Fields)),
		Success:   success,
		Error:     failure,
		Generated: state.Generated,
	}
	for _, def := range c.profile.Fields {
		data.Fields = append(data.Fields, fieldView{Def: def, Value: state.Fields.Value(def.Name)})
	}
	if state.Generated {
		data.DescriptionHTML = renderMarkdown(state.Description)
	}

	buf := new(bytes.Buffer)
	if err := formTemplate.Execute(buf, data); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка формирования страницы")
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// renderMarkdown сырой html в ответе модели goldmark не пропускает
func renderMarkdown(text string) template.HTML {
	buf := new(bytes.Buffer)
	if err := goldmark.Convert([]byte(text), buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(text) + "</pre>")
	}
	return template.HTML(buf.String())
}
