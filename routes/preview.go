package routes

import (
	handlers "registry.link/handlers/preview"

	"github.com/gofiber/fiber/v2"
)

// registerPreviewRoutes defines the owner-preview routes: the editable
// rendering of a registry and the inline-edit endpoints it posts to.
func registerPreviewRoutes(app *fiber.App) {
	previewHandler := handlers.NewPreviewHandler()

	preview := app.Group("/preview", requireLogin)
	preview.Get("/:slug", previewHandler.ShowPreview)
	preview.Patch("/:slug/field", previewHandler.UpdateField)
	preview.Delete("/:slug/field/:field", previewHandler.ClearField)
}
