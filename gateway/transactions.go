package gateway

import (
	"context"

	"github.com/arnav1824/stagepass_admin/models"
)

func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := c.getJSON(ctx, "/api/admin/transactions", "Failed to fetch transactions", &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
