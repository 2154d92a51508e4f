package gateway

import (
	"context"
	"fmt"

	"github.com/arnav1824/stagepass_admin/models"
)

func (c *Client) ListPlanners(ctx context.Context) ([]models.Planner, error) {
	var planners []models.Planner
	if err := c.getJSON(ctx, "/api/admin/planners", "Failed to fetch planners", &planners); err != nil {
		return nil, err
	}
	return planners, nil
}

func (c *Client) GetPlanner(ctx context.Context, id string) (*models.PlannerDetails, error) {
	var planner models.PlannerDetails
	path := fmt.Sprintf("/api/admin/planners/%s", id)
	if err := c.getJSON(ctx, path, "Failed to fetch planner details", &planner); err != nil {
		return nil, err
	}
	return &planner, nil
}

func (c *Client) VerifyPlanner(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/admin/planners/%s/verify", id)
	return c.putJSON(ctx, path, nil, "Failed to verify planner", nil)
}

func (c *Client) RejectPlanner(ctx context.Context, id, message string) error {
	path := fmt.Sprintf("/api/admin/planners/%s/reject", id)
	body := map[string]string{"message": message}
	return c.putJSON(ctx, path, body, "Failed to reject planner", nil)
}
