package handlers

import "github.com/gofiber/fiber/v2"

func (h *Handler) ListPlanners(c *fiber.Ctx) error {
	planners, err := h.Queries.Planners(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(planners)
}

func (h *Handler) GetPlanner(c *fiber.Ctx) error {
	planner, err := h.Queries.Planner(c.Context(), c.Params("plannerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(planner)
}

func (h *Handler) VerifyPlanner(c *fiber.Ctx) error {
	if err := h.Verification.VerifyPlanner(c.Context(), c.Params("plannerId"), adminEmail(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Planner verified successfully"})
}

func (h *Handler) RejectPlanner(c *fiber.Ctx) error {
	var req RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.Verification.RejectPlanner(c.Context(), c.Params("plannerId"), req.Message, adminEmail(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Planner rejected"})
}
