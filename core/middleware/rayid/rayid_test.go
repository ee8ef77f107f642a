package rayid_test

import (
	"net/http/httptest"
	"testing"

	"servo-controller/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())

	var seen string
	app.Get("/probe", func(c *fiber.Ctx) error {
		if id, ok := c.Locals(rayid.LocalsKey).(string); ok {
			seen = id
		}
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	header := resp.Header.Get(rayid.Header)
	assert.NotEmpty(t, header)
	assert.Equal(t, header, seen)

	// A second request gets a fresh ID.
	resp2, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	assert.NoError(t, err)
	assert.NotEqual(t, header, resp2.Header.Get(rayid.Header))
}
