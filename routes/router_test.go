package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() *fiber.App {
	app := fiber.New()
	SetupRoutes(app)
	return app
}

func TestPaymentStatusNormalizesURL(t *testing.T) {
	app := testApp()

	for _, status := range []string{"success", "cancelled"} {
		req := httptest.NewRequest("GET", "/ada-and-alan?payment="+status, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		// The status parameter becomes a flash banner and the URL loses it.
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode, status)
		assert.Equal(t, "/ada-and-alan", resp.Header.Get("Location"), status)
	}
}

func TestPreviewRequiresLogin(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/preview/ada-and-alan", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/auth/login?next=/preview/ada-and-alan", resp.Header.Get("Location"))
}

func TestNotFoundJSONNegotiation(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/no/such/route", nil)
	req.Header.Set("Accept", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}
