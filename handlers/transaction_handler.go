package handlers

import "github.com/gofiber/fiber/v2"

func (h *Handler) ListTransactions(c *fiber.Ctx) error {
	transactions, err := h.Queries.Transactions(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transactions)
}
