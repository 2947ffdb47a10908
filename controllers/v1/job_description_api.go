package apiv1

import (
	"bytes"

	"jd-generator/controllers"
	pdfexport "jd-generator/lib/export/pdf"
	xlsexport "jd-generator/lib/export/xls"
	filestorage "jd-generator/lib/file-storage"
	jobdeschandler "jd-generator/lib/jobdesc"
	"jd-generator/lib/smtp"
	"jd-generator/models"
	apimodels "jd-generator/models/api"
	jobdescmodels "jd-generator/models/api/jobdesc"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type jobDescriptionApiController struct {
	controllers.BaseAPIController
	defaultProfile jobdescmodels.ProfileName
	variant        models.FormVariant
}

func InitJobDescriptionApiRouters(app *fiber.App, defaultProfile jobdescmodels.ProfileName, variant models.FormVariant) {
	controller := jobDescriptionApiController{
		defaultProfile: defaultProfile,
		variant:        variant,
	}
	app.Route("job_description", func(jdRoute fiber.Router) {
		jdRoute.Get("fields", controller.GetFields)
		jdRoute.Post("prompt", controller.BuildPrompt)
		jdRoute.Post("generate", controller.Generate)
		jdRoute.Post("save", controller.Save)
		jdRoute.Post("export", controller.Export)
		jdRoute.Post("send", controller.Send)
	})
}

// @Summary Поля формы
// @Tags Описание вакансии
// @Param   profile     query    string  false  "Профиль формы full/basic"
// @Success 200 {object} apimodels.Response{data=jobdescmodels.FieldsResponse}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/job_description/fields [get]
func (c *jobDescriptionApiController) GetFields(ctx *fiber.Ctx) error {
	name := jobdescmodels.ProfileName(ctx.Query("profile", string(c.defaultProfile)))
	profile, ok := jobdescmodels.GetProfile(name)
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("unknown profile"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(jobdescmodels.FieldsResponse{
		Profile: profile,
		Variant: string(c.variant),
	}))
}

// @Summary Собрать промпт
// @Tags Описание вакансии
// @Param	body	body	jobdescmodels.FormRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobdescmodels.PromptResponse}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/job_description/prompt [post]
func (c *jobDescriptionApiController) BuildPrompt(ctx *fiber.Ctx) error {
	fields, err := c.parseForm(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	prompt, err := jobdeschandler.Instance.BuildPrompt(fields)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(jobdescmodels.PromptResponse{Prompt: prompt}))
}

// @Summary Сгенерировать описание вакансии
// @Tags Описание вакансии
// @Description Ошибка генерации возвращается текстом в поле description
// @Param	body	body	jobdescmodels.FormRequest	true	"request body"
// @Success 201 {object} apimodels.Response{data=jobdescmodels.GenerateResponse}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/job_description/generate [post]
func (c *jobDescriptionApiController) Generate(ctx *fiber.Ctx) error {
	fields, err := c.parseForm(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := jobdeschandler.Instance.Generate(ctx.UserContext(), fields)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Сохранить описание вакансии в файл
// @Tags Описание вакансии
// @Param	body	body	jobdescmodels.SaveRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=jobdescmodels.SaveResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_description/save [post]
func (c *jobDescriptionApiController) Save(ctx *fiber.Ctx) error {
	var payload jobdescmodels.SaveRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	path, err := filestorage.Instance.Save(ctx.UserContext(), payload.Description)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, filestorage.SaveErrorMessage(err))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(jobdescmodels.SaveResponse{Path: path}))
}

// @Summary Выгрузить описание вакансии
// @Tags Описание вакансии
// @Param   format	query	string	true	"pdf/xlsx/md"
// @Param	body	body	jobdescmodels.ExportRequest	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_description/export [post]
func (c *jobDescriptionApiController) Export(ctx *fiber.Ctx) error {
	var payload jobdescmodels.ExportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fields, err := payload.FieldSet(c.defaultProfile)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	switch ctx.Query("format") {
	case "pdf":
		data, err := pdfexport.GenerateJobDescription(payload.Description)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "PDF export failed")
		}
		return c.sendFile(ctx, "application/pdf", "job_description.pdf", data)
	case "xlsx":
		buf, err := xlsexport.ExportJobDescription(fields, payload.Description)
		if err != nil {
			return c.SendError(ctx, c.GetLogger(ctx), err, "XLSX export failed")
		}
		return c.sendFile(ctx, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "job_description.xlsx", buf.Bytes())
	case "md":
		return c.sendFile(ctx, "text/markdown; charset=utf-8", "job_description.md", []byte(payload.Description))
	default:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("format must be one of pdf, xlsx, md"))
	}
}

// @Summary Отправить описание вакансии на почту
// @Tags Описание вакансии
// @Param	body	body	jobdescmodels.SendRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job_description/send [post]
func (c *jobDescriptionApiController) Send(ctx *fiber.Ctx) error {
	var payload jobdescmodels.SendRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := smtp.Instance.SendEMail(payload.Email, smtp.JobDescriptionSubject, payload.Description); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to send email: "+err.Error())
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *jobDescriptionApiController) parseForm(ctx *fiber.Ctx) (*jobdescmodels.FieldSet, error) {
	var payload jobdescmodels.FormRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return nil, err
	}
	fields, err := payload.FieldSet(c.defaultProfile)
	if err != nil {
		return nil, errors.Wrap(err, "invalid form")
	}
	return fields, nil
}

func (c *jobDescriptionApiController) sendFile(ctx *fiber.Ctx, contentType, fileName string, data []byte) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Status(fiber.StatusOK).SendStream(bytes.NewReader(data), len(data))
}
