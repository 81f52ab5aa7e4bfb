package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"registry.link/configs/configslog"
	"registry.link/models"
	"registry.link/pkg/flashmessages"
	"registry.link/pkg/registryview"
	"registry.link/pkg/renderer"
	"registry.link/services"
	"registry.link/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const formTokenSessionKey = "contribution_form_token"

// ContributionHandler serves the contribution form and its submission.
type ContributionHandler struct {
	registryService     services.IRegistryService
	contributionService services.IContributionService
}

// NewContributionHandler builds the handler with default services.
func NewContributionHandler() *ContributionHandler {
	return &ContributionHandler{
		registryService:     services.NewRegistryService(),
		contributionService: services.NewContributionService(),
	}
}

// resolveItem loads the registry through the gateway and picks the addressed
// item out of it, so an item ID can never reach across registries.
func (h *ContributionHandler) resolveItem(c *fiber.Ctx) (*models.Registry, *models.RegistryItem, error) {
	slug := c.Params("slug")
	itemID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || itemID == 0 {
		return nil, nil, services.ErrRegistryNotFound
	}
	registry, err := h.registryService.GetRegistryBySlug(c.UserContext(), slug, utils.ViewerUserID(c))
	if err != nil {
		return nil, nil, err
	}
	for i := range registry.Items {
		if uint64(registry.Items[i].ID) == itemID {
			return registry, &registry.Items[i], nil
		}
	}
	return nil, nil, services.ErrRegistryNotFound
}

// ShowContributionForm renders the contribution form for one item. A fresh
// form token is issued per open form; the submit consumes it, so a form
// instance can be submitted at most once.
func (h *ContributionHandler) ShowContributionForm(c *fiber.Ctx) error {
	registry, item, err := h.resolveItem(c)
	if err != nil {
		if errors.Is(err, services.ErrRegistryNotFound) {
			return RenderNotFound(c, "This gift could not be found.")
		}
		configslog.Log.Error("ShowContributionForm: load error", zap.Error(err))
		return RenderError(c, "The gift could not be loaded. Please try again later.")
	}
	if !item.Contributable() {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashNoticeKey,
			"This gift has already been fulfilled. Thank you for looking!")
		return c.Redirect("/"+registry.Slug, fiber.StatusSeeOther)
	}

	token := uuid.New().String()
	if sess, sErr := utils.SessionStart(c); sErr == nil {
		sess.Set(formTokenSessionKey, token)
		_ = sess.Save()
	}

	flashData, _ := flashmessages.GetFlashMessages(c)
	var previous services.ContributionDraft
	hadPrevious := flashmessages.GetFlashFormData(c, &previous)
	data := fiber.Map{
		"Title":     "Contribute to " + item.Title,
		"Registry":  registry,
		"Palette":   models.PaletteFor(registry.Theme, registry.CustomPalette),
		"ItemView":  registryview.BuildItemView(*item),
		"FormToken": token,
	}
	if hadPrevious {
		data["FormData"] = previous
	}
	renderer.SetFlashMessages(data, flashData)
	return renderer.Render(c, "public/contribution_form", "layouts/public_layout", data)
}

// consumeFormToken enforces at-most-one submission per open form. The token
// is deleted before the payment flow starts, so a second concurrent POST of
// the same form loses.
func (h *ContributionHandler) consumeFormToken(c *fiber.Ctx) bool {
	posted := c.FormValue("form_token")
	if posted == "" {
		return false
	}
	sess, err := utils.SessionStart(c)
	if err != nil {
		return false
	}
	stored, _ := sess.Get(formTokenSessionKey).(string)
	if stored == "" || stored != posted {
		return false
	}
	sess.Delete(formTokenSessionKey)
	return sess.Save() == nil
}

// SubmitContribution validates and submits the posted draft. Validation
// failures and payment failures return to the form; success redirects to the
// registry page with the payment status parameter.
func (h *ContributionHandler) SubmitContribution(c *fiber.Ctx) error {
	registry, item, err := h.resolveItem(c)
	if err != nil {
		if errors.Is(err, services.ErrRegistryNotFound) {
			return RenderNotFound(c, "This gift could not be found.")
		}
		configslog.Log.Error("SubmitContribution: load error", zap.Error(err))
		return RenderError(c, "The gift could not be loaded. Please try again later.")
	}
	formPath := fmt.Sprintf("/%s/items/%d/contribute", registry.Slug, item.ID)

	if !h.consumeFormToken(c) {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey,
			"This contribution is already being processed.")
		return c.Redirect(formPath, fiber.StatusSeeOther)
	}

	var draft services.ContributionDraft
	if err := c.BodyParser(&draft); err != nil {
		configslog.Log.Warn("SubmitContribution: bad form payload", zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Please check the form and try again.")
		return c.Redirect(formPath, fiber.StatusSeeOther)
	}
	// Unchecked checkboxes post nothing; guestbook visibility defaults on.
	isPublic := c.FormValue("is_public", "true")
	draft.IsPublic = isPublic == "true" || isPublic == "on"

	_, err = h.contributionService.SubmitContribution(c.UserContext(), registry, item, draft)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemFulfilled):
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashNoticeKey,
				"This gift has already been fulfilled.")
			return c.Redirect("/"+registry.Slug, fiber.StatusSeeOther)
		case errors.Is(err, services.ErrPaymentFailed):
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey,
				"The payment could not be completed. You have not been charged, please try again.")
			_ = flashmessages.SetFlashFormData(c, draft)
		case errors.Is(err, services.ErrContributorNameRequired),
			errors.Is(err, services.ErrContributorEmailInvalid),
			errors.Is(err, services.ErrAmountInvalid),
			errors.Is(err, services.ErrAmountBelowMinimum):
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
			_ = flashmessages.SetFlashFormData(c, draft)
		default:
			configslog.Log.Error("SubmitContribution: submit error",
				zap.String("slug", registry.Slug), zap.Uint("item_id", item.ID), zap.Error(err))
			_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey,
				"Your contribution could not be processed. Please try again.")
		}
		return c.Redirect(formPath, fiber.StatusSeeOther)
	}

	return c.Redirect("/"+registry.Slug+"?payment=success", fiber.StatusSeeOther)
}
