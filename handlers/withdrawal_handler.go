package handlers

import (
	"github.com/arnav1824/stagepass_admin/models"
	"github.com/gofiber/fiber/v2"
)

type UpdateWithdrawalRequest struct {
	Status     string `json:"status" validate:"required,oneof=processed rejected"`
	AdminNotes string `json:"adminNotes"`
}

func (h *Handler) ListWithdrawals(c *fiber.Ctx) error {
	requests, err := h.Queries.Withdrawals(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(requests)
}

func (h *Handler) GetWithdrawal(c *fiber.Ctx) error {
	request, err := h.Queries.Withdrawal(c.Context(), c.Params("requestId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(request)
}

func (h *Handler) WithdrawalStats(c *fiber.Ctx) error {
	stats, err := h.Withdrawals.Stats(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}

func (h *Handler) UpdateWithdrawalStatus(c *fiber.Ctx) error {
	var req UpdateWithdrawalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	id := c.Params("requestId")

	var updated *models.WithdrawRequest
	var err error
	switch models.WithdrawalStatus(req.Status) {
	case models.WithdrawalProcessed:
		updated, err = h.Withdrawals.Process(c.Context(), id, adminEmail(c))
	case models.WithdrawalRejected:
		updated, err = h.Withdrawals.Reject(c.Context(), id, req.AdminNotes, adminEmail(c))
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(updated)
}
