package gateway

import (
	"context"
	"fmt"

	"github.com/arnav1824/stagepass_admin/models"
)

func (c *Client) ListArtists(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	if err := c.getJSON(ctx, "/api/admin/artists", "Failed to fetch artists", &artists); err != nil {
		return nil, err
	}
	return artists, nil
}

func (c *Client) GetArtist(ctx context.Context, id string) (*models.ArtistDetails, error) {
	var artist models.ArtistDetails
	path := fmt.Sprintf("/api/admin/artists/%s", id)
	if err := c.getJSON(ctx, path, "Failed to fetch artist details", &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

func (c *Client) VerifyArtist(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/admin/artists/%s/verify", id)
	return c.putJSON(ctx, path, nil, "Failed to verify artist", nil)
}

func (c *Client) RejectArtist(ctx context.Context, id, message string) error {
	path := fmt.Sprintf("/api/admin/artists/%s/reject", id)
	body := map[string]string{"message": message}
	return c.putJSON(ctx, path, body, "Failed to reject artist", nil)
}
