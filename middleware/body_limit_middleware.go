package middleware

import (
	"fmt"
	"strconv"

	apimodels "jd-generator/models/api"

	"github.com/gofiber/fiber/v2"
)

// WithBodyLimit отклоняет запросы, у которых заявленный Content-Length больше limit
func WithBodyLimit(limit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength != "" && contentLength != "0" {
			size, err := strconv.ParseInt(contentLength, 10, 64)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("invalid Content-Length"))
			}
			if size > limit {
				return c.Status(fiber.StatusRequestEntityTooLarge).JSON(apimodels.NewError(
					fmt.Sprintf("Request body too large. Maximum allowed: %d bytes", limit)))
			}
		}

		return c.Next()
	}
}
