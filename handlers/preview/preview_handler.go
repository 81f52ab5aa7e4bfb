package handlers

import (
	"context"
	"errors"

	"registry.link/configs/configslog"
	"registry.link/models"
	"registry.link/pkg/editsession"
	"registry.link/pkg/flashmessages"
	"registry.link/pkg/registryview"
	"registry.link/pkg/renderer"
	"registry.link/services"
	"registry.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PreviewHandler serves the owner-facing preview: the registry page rendered
// with inline editing affordances, plus the field update endpoints the
// editor posts to.
type PreviewHandler struct {
	registryService     services.IRegistryService
	editorService       services.IRegistryEditorService
	contributionService services.IContributionService
}

// NewPreviewHandler builds the handler with default services.
func NewPreviewHandler() *PreviewHandler {
	return &PreviewHandler{
		registryService:     services.NewRegistryService(),
		editorService:       services.NewRegistryEditorService(),
		contributionService: services.NewContributionService(),
	}
}

// loadOwnedRegistry resolves :slug and insists the viewer owns it. The
// gateway already serves drafts to their owner; published registries still
// need the explicit ownership check here, since anyone can load those.
func (h *PreviewHandler) loadOwnedRegistry(c *fiber.Ctx) (*models.Registry, uint, error) {
	owner := utils.ViewerUserID(c)
	if owner == 0 {
		return nil, 0, services.ErrRegistryForbidden
	}
	registry, err := h.registryService.GetRegistryBySlug(c.UserContext(), c.Params("slug"), owner)
	if err != nil {
		return nil, 0, err
	}
	if registry.OwnerUserID != owner {
		return nil, 0, services.ErrRegistryForbidden
	}
	return registry, owner, nil
}

// ShowPreview renders the registry page in preview mode.
func (h *PreviewHandler) ShowPreview(c *fiber.Ctx) error {
	registry, _, err := h.loadOwnedRegistry(c)
	if err != nil {
		return h.previewError(c, err)
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{
		"Title":       registry.Title,
		"Registry":    registry,
		"Palette":     models.PaletteFor(registry.Theme, registry.CustomPalette),
		"Sections":    registryview.BuildSections(registry.Items),
		"PreviewMode": true,
		"Draft":       !registry.IsPublished,
	}
	if registry.GuestbookEnabled {
		if guestbook, gbErr := h.contributionService.GetGuestbook(c.UserContext(), registry.ID); gbErr == nil {
			data["Guestbook"] = guestbook
		}
	}
	renderer.SetFlashMessages(data, flashData)
	return renderer.Render(c, "public/registry_view", "layouts/public_layout", data)
}

// registryFieldUpdater forwards editor commits to the update boundary.
type registryFieldUpdater struct {
	ctx     context.Context
	svc     services.IRegistryEditorService
	slug    string
	ownerID uint
}

func (u registryFieldUpdater) UpdateField(field models.EditableField, value string) error {
	return u.svc.UpdateRegistryFields(u.ctx, u.slug, u.ownerID,
		map[models.EditableField]string{field: value})
}

// editorFor builds the inline-edit state machine for this request, seeded
// with the registry's current field values.
func (h *PreviewHandler) editorFor(c *fiber.Ctx, registry *models.Registry, ownerID uint) *editsession.Session {
	values := make(map[models.EditableField]string)
	for _, f := range models.EditableFields() {
		values[f] = registry.FieldValue(f)
	}
	updater := registryFieldUpdater{
		ctx:     c.UserContext(),
		svc:     h.editorService,
		slug:    registry.Slug,
		ownerID: ownerID,
	}
	return editsession.New(true, values, updater)
}

// UpdateField commits one inline-edited field value. The editor posts here
// on blur or confirm; an explicitly empty value clears the field.
func (h *PreviewHandler) UpdateField(c *fiber.Ctx) error {
	registry, ownerID, err := h.loadOwnedRegistry(c)
	if err != nil {
		return h.previewJSONError(c, err)
	}
	field, err := editsession.ParseField(c.FormValue("field"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown field"})
	}

	editor := h.editorFor(c, registry, ownerID)
	if err := editor.Begin(field); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err := editor.SetBuffer(c.FormValue("value")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := editor.Commit(); err != nil {
		configslog.Log.Error("UpdateField: commit failed",
			zap.String("slug", registry.Slug), zap.String("field", string(field)), zap.Error(err))
		return h.previewJSONError(c, err)
	}
	return c.JSON(fiber.Map{"field": string(field), "value": editor.Value(field)})
}

// ClearField commits an empty value for one field directly, without the
// editor entering edit mode.
func (h *PreviewHandler) ClearField(c *fiber.Ctx) error {
	registry, ownerID, err := h.loadOwnedRegistry(c)
	if err != nil {
		return h.previewJSONError(c, err)
	}
	field, err := editsession.ParseField(c.Params("field"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown field"})
	}

	if err := h.editorFor(c, registry, ownerID).Clear(field); err != nil {
		configslog.Log.Error("ClearField: clear failed",
			zap.String("slug", registry.Slug), zap.String("field", string(field)), zap.Error(err))
		return h.previewJSONError(c, err)
	}
	return c.JSON(fiber.Map{"field": string(field), "value": ""})
}

func (h *PreviewHandler) previewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrRegistryForbidden):
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey,
			"You can only preview your own registries.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	case errors.Is(err, services.ErrRegistryNotFound):
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title":   "Not Found",
			"Message": "This registry does not exist.",
		}, "layouts/error_layout")
	default:
		configslog.Log.Error("Preview: load error", zap.String("slug", c.Params("slug")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
			"Title":   "Something Went Wrong",
			"Message": "The preview could not be loaded.",
		}, "layouts/error_layout")
	}
}

func (h *PreviewHandler) previewJSONError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrRegistryForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrRegistryNotFound):
		status = fiber.StatusNotFound
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
