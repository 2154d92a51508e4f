package handlers

import (
	"time"

	config "github.com/arnav1824/stagepass_admin/configs"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin verifies the credentials against the marketplace, keeps the
// upstream access token in the credential store, and hands the UI a console
// session token. The upstream token never leaves the process.
func (h *Handler) AdminLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	res, err := h.Gateway.AdminLogin(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	h.Tokens.Set(res.AccessToken)

	claims := jwt.MapClaims{
		"email": res.Email,
		"role":  "admin",
		"exp":   time.Now().Add(time.Hour * 72).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{
		"message":      res.Message,
		"email":        res.Email,
		"access_token": t,
	})
}
