package models

type AdminLoginResponse struct {
	Message     string `json:"message"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}
