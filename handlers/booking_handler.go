package handlers

import "github.com/gofiber/fiber/v2"

func (h *Handler) ListBookings(c *fiber.Ctx) error {
	bookings, err := h.Queries.Bookings(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(bookings)
}

func (h *Handler) GetBooking(c *fiber.Ctx) error {
	booking, err := h.Queries.Booking(c.Context(), c.Params("bookingId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(booking)
}

func (h *Handler) BookingStats(c *fiber.Ctx) error {
	stats, err := h.Queries.BookingStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
