package configs

import (
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupSession builds the cookie-backed session store. One store serves the
// whole app; the router places it into Locals for the handlers.
func SetupSession() *session.Store {
	return session.New(session.Config{
		CookieName:     GetEnv("SESSION_COOKIE_NAME", "registrylink_session"),
		Expiration:     24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		CookieSecure:   GetEnv("APP_ENV", "development") == "production",
	})
}
