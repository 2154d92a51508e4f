package handlers

import "github.com/gofiber/fiber/v2"

func (h *Handler) ListEvents(c *fiber.Ctx) error {
	events, err := h.Queries.Events(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(events)
}

func (h *Handler) GetEvent(c *fiber.Ctx) error {
	event, err := h.Queries.Event(c.Context(), c.Params("eventId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(event)
}
