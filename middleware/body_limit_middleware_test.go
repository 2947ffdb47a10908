package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(16))
	app.Post("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run(`small body passes`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("short")), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run(`large body rejected`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 17))), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	})

	t.Run(`empty body passes`, func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", nil), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
