package routes

import (
	handlers "registry.link/handlers/auth"

	"github.com/gofiber/fiber/v2"
)

// registerAuthRoutes defines the owner sign-in routes.
func registerAuthRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler()

	auth := app.Group("/auth")
	auth.Get("/login", authHandler.ShowLogin)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
}
