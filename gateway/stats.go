package gateway

import (
	"context"

	"github.com/arnav1824/stagepass_admin/models"
)

func (c *Client) DashboardStats(ctx context.Context) ([]models.StatCard, error) {
	var stats []models.StatCard
	if err := c.getJSON(ctx, "/api/admin/stats", "Failed to fetch dashboard stats", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (c *Client) RevenueChart(ctx context.Context) ([]models.RevenueChartData, error) {
	var data []models.RevenueChartData
	if err := c.getJSON(ctx, "/api/admin/revenue-chart", "Failed to fetch revenue chart data", &data); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) BookingTrends(ctx context.Context) ([]models.BookingTrendData, error) {
	var data []models.BookingTrendData
	if err := c.getJSON(ctx, "/api/admin/booking-trends", "Failed to fetch booking trends", &data); err != nil {
		return nil, err
	}
	return data, nil
}
