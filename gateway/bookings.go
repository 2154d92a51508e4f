package gateway

import (
	"context"
	"fmt"

	"github.com/arnav1824/stagepass_admin/models"
)

func (c *Client) ListBookings(ctx context.Context) ([]models.BookingSummary, error) {
	var bookings []models.BookingSummary
	if err := c.getJSON(ctx, "/api/admin/bookings", "Failed to fetch bookings", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) GetBooking(ctx context.Context, id string) (*models.BookingDetails, error) {
	var booking models.BookingDetails
	path := fmt.Sprintf("/api/admin/bookings/%s", id)
	if err := c.getJSON(ctx, path, "Failed to fetch booking details", &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *Client) BookingStats(ctx context.Context) ([]models.StatCard, error) {
	var stats []models.StatCard
	if err := c.getJSON(ctx, "/api/admin/booking-stats", "Failed to fetch booking stats", &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
