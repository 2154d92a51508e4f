package gateway

import (
	"context"

	"github.com/arnav1824/stagepass_admin/models"
)

type adminLoginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin authenticates against the marketplace. The returned access
// token belongs in the credential store; it is never sent back to the UI.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (*models.AdminLoginResponse, error) {
	var res models.AdminLoginResponse
	body := adminLoginBody{Email: email, Password: password}
	if err := c.postJSON(ctx, "/api/auth/admin-login", body, "Login failed", &res); err != nil {
		return nil, err
	}
	return &res, nil
}
