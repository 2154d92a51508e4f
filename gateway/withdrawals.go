package gateway

import (
	"context"
	"fmt"

	"github.com/arnav1824/stagepass_admin/models"
)

type updateWithdrawalBody struct {
	Status     models.WithdrawalStatus `json:"status"`
	AdminNotes string                  `json:"adminNotes,omitempty"`
}

func (c *Client) ListWithdrawals(ctx context.Context) ([]models.WithdrawRequest, error) {
	var requests []models.WithdrawRequest
	if err := c.getJSON(ctx, "/api/admin/withdrawals", "Failed to fetch withdraw requests", &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) GetWithdrawal(ctx context.Context, id string) (*models.WithdrawRequest, error) {
	var request models.WithdrawRequest
	path := fmt.Sprintf("/api/admin/withdrawals/%s", id)
	if err := c.getJSON(ctx, path, "Failed to fetch withdrawal request details", &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *Client) WithdrawalStats(ctx context.Context) ([]models.StatCard, error) {
	var stats []models.StatCard
	if err := c.getJSON(ctx, "/api/admin/withdrawals/stats", "Failed to fetch withdrawal stats", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// UpdateWithdrawalStatus moves a payout request to a terminal status.
// AdminNotes rides along only for rejections, matching the upstream contract.
func (c *Client) UpdateWithdrawalStatus(ctx context.Context, id string, status models.WithdrawalStatus, adminNotes string) (*models.WithdrawRequest, error) {
	body := updateWithdrawalBody{Status: status}
	if status == models.WithdrawalRejected {
		body.AdminNotes = adminNotes
	}

	var updated models.WithdrawRequest
	path := fmt.Sprintf("/api/admin/withdrawals/%s/status", id)
	fallback := fmt.Sprintf("Failed to update withdrawal status to %s", status)
	if err := c.putJSON(ctx, path, body, fallback, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
