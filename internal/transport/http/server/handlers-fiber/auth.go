package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/drjayaswal/biasbreaker-backend/internal/api"
	"github.com/drjayaswal/biasbreaker-backend/internal/mapper"
)

// PostAuthRegister creates an account.
func (h *Handler) PostAuthRegister(c *fiber.Ctx) error {
	var body api.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	user, err := h.uc.Register(c.Context(), body.Email, body.Password)
	if err != nil {
		h.log.Errorw("failed to register", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)}
	return c.Status(http.StatusCreated).JSON(resp)
}

// PostAuthLogin verifies credentials and returns a bearer token.
func (h *Handler) PostAuthLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	token, err := h.uc.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
