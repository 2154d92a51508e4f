package routes

import (
	"github.com/arnav1824/stagepass_admin/handlers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App, h *handlers.Handler) {
	auth := app.Group("/api/auth")
	auth.Post("/admin-login", h.AdminLogin)
}
