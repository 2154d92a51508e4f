package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/arnav1824/stagepass_admin/models"
	"github.com/gofiber/fiber/v2"
)

// SettlementReport exports the withdrawal collection as CSV, optionally
// filtered by status (?status=processed).
func (h *Handler) SettlementReport(c *fiber.Ctx) error {
	status := models.WithdrawalStatus(c.Query("status"))

	requests, err := h.Queries.Withdrawals(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	headers := []string{"Request ID", "Name", "Type", "Amount", "Status", "Bank Details", "Transaction ID", "Admin Notes", "Requested", "Updated"}
	if err := w.Write(headers); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV header"})
	}

	for _, r := range requests {
		if status != "" && r.Status != status {
			continue
		}

		var bankDetails, transactionID string
		if r.BankDetails != nil {
			bankDetails = r.BankDetails.Summary()
		}
		if r.Transaction != nil {
			transactionID = r.Transaction.ID
		}

		row := []string{
			r.ID,
			r.User.DisplayName,
			string(r.UserType),
			fmt.Sprintf("%.2f", r.Amount),
			string(r.Status),
			bankDetails,
			transactionID,
			r.AdminNotes,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.UpdatedAt.Format("2006-01-02 15:04"),
		}
		if err := w.Write(row); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV row"})
		}
	}
	w.Flush()

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"settlements_%s.csv\"", time.Now().Format("2006-01-02")))

	return c.Send(b.Bytes())
}
