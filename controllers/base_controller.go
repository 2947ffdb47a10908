package controllers

import (
	apimodels "jd-generator/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("unable to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("id is required")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	logger := log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
	if requestID, ok := ctx.Locals("requestid").(string); ok {
		logger = logger.WithField("request_id", requestID)
	}
	return logger
}

// SendError 500 с логированием причины
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	logger.WithError(err).Error(message)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(message))
}
