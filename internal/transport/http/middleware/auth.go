package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/drjayaswal/biasbreaker-backend/internal/api"
)

// Locals keys populated by BearerAuth.
const (
	LocalsUserID = "user_id"
	LocalsEmail  = "user_email"
)

// TokenDecoder verifies an access token and returns the authenticated identity.
type TokenDecoder interface {
	DecodeToken(token string) (uuid.UUID, string, error)
}

// BearerAuth requires a valid Authorization: Bearer token and stores the
// authenticated user id and email in the request locals.
func BearerAuth(tokens TokenDecoder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return unauthorized(c)
		}

		userID, email, err := tokens.DecodeToken(token)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(LocalsUserID, userID)
		c.Locals(LocalsEmail, email)
		return c.Next()
	}
}

// UserID extracts the authenticated user id set by BearerAuth.
func UserID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(LocalsUserID).(uuid.UUID)
	return id, ok
}

func unauthorized(c *fiber.Ctx) error {
	resp := api.ErrorResponse{}
	resp.Error.Code = api.TOKENINVALID
	resp.Error.Message = "missing or invalid access token"
	return c.Status(http.StatusUnauthorized).JSON(resp)
}
