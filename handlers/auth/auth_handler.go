package handlers

import (
	"errors"

	"registry.link/configs/configslog"
	"registry.link/pkg/flashmessages"
	"registry.link/pkg/renderer"
	"registry.link/services"
	"registry.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler serves owner login and logout. Guests never authenticate;
// accounts exist for draft previews and inline editing.
type AuthHandler struct {
	authService services.IAuthService
}

// NewAuthHandler builds the handler with the default service.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	if utils.ViewerUserID(c) != 0 {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	flashData, _ := flashmessages.GetFlashMessages(c)
	data := fiber.Map{"Title": "Sign In", "Next": c.Query("next")}
	renderer.SetFlashMessages(data, flashData)
	return renderer.Render(c, "auth/login", "layouts/auth_layout", data)
}

// Login authenticates the posted credentials and starts the session.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.authService.Authenticate(c.UserContext(), email, password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			configslog.Log.Error("Login: authentication error", zap.Error(err))
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, services.ErrInvalidCredentials.Error())
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	sess, err := utils.SessionStart(c)
	if err != nil {
		configslog.Log.Error("Login: session error", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	if err := utils.SetSessionUser(sess, user.ID, user.Name); err != nil {
		configslog.Log.Error("Login: session save error", zap.Error(err))
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}

	next := c.FormValue("next")
	if next == "" || next[0] != '/' {
		next = "/"
	}
	configslog.SLog.Infof("User %d signed in", user.ID)
	return c.Redirect(next, fiber.StatusSeeOther)
}

// Logout destroys the session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, err := utils.SessionStart(c); err == nil {
		_ = utils.ClearSession(sess)
	}
	return c.Redirect("/auth/login", fiber.StatusSeeOther)
}
