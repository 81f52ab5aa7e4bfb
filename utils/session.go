package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const sessionUserIDKey = "user_id"

var (
	ErrSessionStoreMissing = errors.New("session store is not configured")
	ErrNoSessionUser       = errors.New("no authenticated user in session")
)

// SessionStart fetches the request session from the store placed into
// Locals by the router middleware.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// GetUserIDFromSession reads the authenticated user's ID, if any.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	id, ok := sess.Get(sessionUserIDKey).(uint)
	if !ok || id == 0 {
		return 0, ErrNoSessionUser
	}
	return id, nil
}

// SetSessionUser stores the authenticated user on the session.
func SetSessionUser(sess *session.Session, userID uint, name string) error {
	sess.Set(sessionUserIDKey, userID)
	sess.Set("user_name", name)
	return sess.Save()
}

// ClearSession destroys the session (logout).
func ClearSession(sess *session.Session) error {
	return sess.Destroy()
}

// ViewerUserID resolves the current viewer from Locals, 0 for guests.
func ViewerUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}
