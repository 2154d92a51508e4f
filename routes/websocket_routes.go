package routes

import (
	"github.com/arnav1824/stagepass_admin/handlers"
	"github.com/arnav1824/stagepass_admin/websocket"
	"github.com/gofiber/fiber/v2"
)

func WebsocketRoutes(app *fiber.App, h *handlers.Handler) {
	app.Use("/ws", websocket.Upgrade)
	app.Get("/ws", h.Hub.Handler())
}
