package handlers

import "github.com/gofiber/fiber/v2"

func (h *Handler) DashboardStats(c *fiber.Ctx) error {
	stats, err := h.Queries.DashboardStats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func (h *Handler) RevenueChart(c *fiber.Ctx) error {
	data, err := h.Queries.RevenueChart(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(data)
}

func (h *Handler) BookingTrends(c *fiber.Ctx) error {
	data, err := h.Queries.BookingTrends(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(data)
}
