package handlers

import "github.com/gofiber/fiber/v2"

type RejectRequest struct {
	Message string `json:"message" validate:"required"`
}

func (h *Handler) ListArtists(c *fiber.Ctx) error {
	artists, err := h.Queries.Artists(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(artists)
}

func (h *Handler) GetArtist(c *fiber.Ctx) error {
	artist, err := h.Queries.Artist(c.Context(), c.Params("artistId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(artist)
}

func (h *Handler) VerifyArtist(c *fiber.Ctx) error {
	if err := h.Verification.VerifyArtist(c.Context(), c.Params("artistId"), adminEmail(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Artist verified successfully"})
}

func (h *Handler) RejectArtist(c *fiber.Ctx) error {
	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.Verification.RejectArtist(c.Context(), c.Params("artistId"), req.Message, adminEmail(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Artist rejected"})
}
