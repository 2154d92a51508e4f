package handlers

import (
	"strconv"

	"github.com/arnav1824/stagepass_admin/models"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListAuditLogs(c *fiber.Ctx) error {
	if h.DB == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Audit trail is not configured"})
	}

	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := h.DB.Model(&models.AuditLog{}).Order("created_at desc").Limit(limit)
	if targetID := c.Query("target_id"); targetID != "" {
		query = query.Where("target_id = ?", targetID)
	}

	var logs []models.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(logs)
}
