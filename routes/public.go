package routes

import (
	handlers "registry.link/handlers/public"

	"github.com/gofiber/fiber/v2"
)

// registerPublicRoutes defines the guest-facing routes. The :slug route is a
// catch-all, so this must run after every named group.
func registerPublicRoutes(app *fiber.App) {
	registryHandler := handlers.NewRegistryHandler()
	contributionHandler := handlers.NewContributionHandler()

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("public/home", fiber.Map{"Title": "registry.link"}, "layouts/public_layout")
	})

	app.Get("/:slug", registryHandler.ShowRegistry)
	app.Get("/:slug/items/:id/contribute", contributionHandler.ShowContributionForm)
	app.Post("/:slug/items/:id/contribute", contributionHandler.SubmitContribution)
}
