package apiv1

import (
	"jd-generator/controllers"
	ailogstore "jd-generator/lib/ai/ailog-store"
	apimodels "jd-generator/models/api"
	aiapimodels "jd-generator/models/api/ai"

	"github.com/gofiber/fiber/v2"
)

type aiLogApiController struct {
	controllers.BaseAPIController
	store ailogstore.Provider
}

func InitAiLogApiRouters(app *fiber.App, store ailogstore.Provider) {
	controller := aiLogApiController{store: store}
	app.Route("ai_log", func(logRoute fiber.Router) {
		logRoute.Get("", controller.List)
		logRoute.Get(":id", controller.Get)
	})
}

// @Summary Журнал запросов к ИИ
// @Tags ИИ
// @Param   page	query	int	false	"Страница"
// @Param   limit	query	int	false	"Записей на странице"
// @Success 200 {object} apimodels.Response{data=[]aiapimodels.AiLogView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai_log [get]
func (c *aiLogApiController) List(ctx *fiber.Ctx) error {
	var pagination apimodels.Pagination
	if err := ctx.QueryParser(&pagination); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid pagination"))
	}
	page, limit := pagination.GetPage()
	list, _, err := c.store.List(page, limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка получения журнала запросов к ИИ")
	}
	result := make([]aiapimodels.AiLogView, 0, len(list))
	for _, rec := range list {
		result = append(result, aiapimodels.AiLogConvert(rec))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Запись журнала запросов к ИИ
// @Tags ИИ
// @Param   id	path	string	true	"ID"
// @Success 200 {object} apimodels.Response{data=aiapimodels.AiLogView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ai_log/{id} [get]
func (c *aiLogApiController) Get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := c.store.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "ошибка получения записи журнала запросов к ИИ")
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("record not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(aiapimodels.AiLogConvert(*rec)))
}
