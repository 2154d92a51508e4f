package gateway

import (
	"context"
	"fmt"

	"github.com/arnav1824/stagepass_admin/models"
)

func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := c.getJSON(ctx, "/api/admin/events", "Failed to fetch events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*models.EventDetails, error) {
	var event models.EventDetails
	path := fmt.Sprintf("/api/admin/events/%s", id)
	if err := c.getJSON(ctx, path, "Failed to fetch event details", &event); err != nil {
		return nil, err
	}
	return &event, nil
}
