package routes

import (
	"registry.link/configs"
	"registry.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes wires all application routes and shared middleware. The public
// slug route is registered last so the named groups keep their prefixes.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals())

	registerAuthRoutes(app)
	registerPreviewRoutes(app)

	// The catch-all /:slug route comes after every named group.
	registerPublicRoutes(app)

	app.Use(notFoundHandler)
}

// initializeSessionAndLocals places the session store and the signed-in
// viewer into Locals for every request.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, idErr := utils.GetUserIDFromSession(sess); idErr == nil {
			c.Locals("userID", userID)
		}
		if userName, ok := sess.Get("user_name").(string); ok {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

// requireLogin redirects anonymous requests to the login form, keeping the
// original destination.
func requireLogin(c *fiber.Ctx) error {
	if utils.ViewerUserID(c) == 0 {
		return c.Redirect("/auth/login?next="+c.Path(), fiber.StatusSeeOther)
	}
	return c.Next()
}

// notFoundHandler catches every unmatched route.
func notFoundHandler(c *fiber.Ctx) error {
	if c.Accepts("text/html", "application/json") == "application/json" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	}
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title": "Page Not Found",
	}, "layouts/error_layout")
}
