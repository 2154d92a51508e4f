package handlers

import (
	"errors"

	"github.com/arnav1824/stagepass_admin/gateway"
	"github.com/arnav1824/stagepass_admin/mutation"
	"github.com/arnav1824/stagepass_admin/services"
	"github.com/arnav1824/stagepass_admin/websocket"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

var validate = validator.New()

// Handler carries the injected services behind every route.
type Handler struct {
	Gateway      *gateway.Client
	Tokens       *gateway.MemoryTokenStore
	Queries      *services.QueryService
	Verification *services.VerificationService
	Withdrawals  *services.WithdrawalService
	Hub          *websocket.Hub
	DB           *gorm.DB
}

func New(gw *gateway.Client, tokens *gateway.MemoryTokenStore, queries *services.QueryService, verification *services.VerificationService, withdrawals *services.WithdrawalService, hub *websocket.Hub, db *gorm.DB) *Handler {
	return &Handler{
		Gateway:      gw,
		Tokens:       tokens,
		Queries:      queries,
		Verification: verification,
		Withdrawals:  withdrawals,
		Hub:          hub,
		DB:           db,
	}
}

// respondError maps the service error taxonomy onto HTTP statuses: blocked
// preconditions are 400, duplicate submissions are 409, upstream rejections
// keep their status and message, anything else is a bad gateway.
func respondError(c *fiber.Ctx, err error) error {
	var remote *gateway.RemoteError
	switch {
	case errors.Is(err, mutation.ErrInFlight):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrReasonRequired), errors.Is(err, services.ErrNoteRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &remote):
		return c.Status(remote.StatusCode).JSON(fiber.Map{"error": remote.Message})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
}

// adminEmail pulls the acting admin out of the session token for the audit
// trail. Empty when the route is mounted without the JWT middleware.
func adminEmail(c *fiber.Ctx) string {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
