package handlers

import (
	"errors"

	"registry.link/configs/configslog"
	"registry.link/models"
	"registry.link/pkg/flashmessages"
	"registry.link/pkg/registryview"
	"registry.link/pkg/renderer"
	"registry.link/services"
	"registry.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RegistryHandler serves the guest-facing registry pages.
type RegistryHandler struct {
	registryService     services.IRegistryService
	contributionService services.IContributionService
}

// NewRegistryHandler builds the handler with default services.
func NewRegistryHandler() *RegistryHandler {
	return &RegistryHandler{
		registryService:     services.NewRegistryService(),
		contributionService: services.NewContributionService(),
	}
}

// ShowRegistry resolves :slug and renders the themed registry page. An
// incoming payment status query parameter is converted to a flash banner and
// the URL normalized before rendering.
func (h *RegistryHandler) ShowRegistry(c *fiber.Ctx) error {
	slug := c.Params("slug")

	switch c.Query("payment") {
	case "success":
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey,
			"Thank you! Your contribution was received.")
		return c.Redirect("/"+slug, fiber.StatusSeeOther)
	case "cancelled":
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashNoticeKey,
			"Your contribution was cancelled. The gift is still waiting!")
		return c.Redirect("/"+slug, fiber.StatusSeeOther)
	}

	viewer := utils.ViewerUserID(c)
	registry, err := h.registryService.GetRegistryBySlug(c.UserContext(), slug, viewer)
	if err != nil {
		if errors.Is(err, services.ErrRegistryNotFound) {
			return RenderNotFound(c, "This registry does not exist or is no longer available.")
		}
		configslog.Log.Error("ShowRegistry: load error", zap.String("slug", slug), zap.Error(err))
		return RenderError(c, "The registry could not be loaded. Please try again later.")
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	data := h.buildPageData(c, registry)
	renderer.SetFlashMessages(data, flashData)
	return renderer.Render(c, "public/registry_view", "layouts/public_layout", data)
}

// buildPageData assembles the render payload shared by the public page and
// the owner preview.
func (h *RegistryHandler) buildPageData(c *fiber.Ctx, registry *models.Registry) fiber.Map {
	data := fiber.Map{
		"Title":    registry.Title,
		"Registry": registry,
		"Palette":  models.PaletteFor(registry.Theme, registry.CustomPalette),
		"Sections": registryview.BuildSections(registry.Items),
	}
	if registry.GuestbookEnabled {
		guestbook, err := h.contributionService.GetGuestbook(c.UserContext(), registry.ID)
		if err != nil {
			// The page still renders without its guestbook.
			configslog.Log.Warn("ShowRegistry: guestbook load failed",
				zap.Uint("registry_id", registry.ID), zap.Error(err))
		} else {
			data["Guestbook"] = guestbook
		}
	}
	return data
}

// RenderNotFound renders the standard 404 page with a navigate-home action.
func RenderNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Not Found",
		"Message": message,
	}, "layouts/error_layout")
}

// RenderError renders the standard 500 page with a navigate-home action.
func RenderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Something Went Wrong",
		"Message": message,
	}, "layouts/error_layout")
}
