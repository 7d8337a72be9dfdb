package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/drjayaswal/biasbreaker-backend/internal/api"
	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
	"github.com/drjayaswal/biasbreaker-backend/internal/transport/http/middleware"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.BADREQUEST
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.BADREQUEST
		msg = err.Error()
	case errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrAnalysisNotFound),
		errors.Is(err, entities.ErrNoFileURL):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrEmailExists):
		status = http.StatusConflict
		code = api.EMAILEXISTS
		msg = "email already registered"
	case errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = api.INVALIDCREDENTIALS
		msg = "invalid email or password"
	case errors.Is(err, entities.ErrTokenInvalid):
		status = http.StatusUnauthorized
		code = api.TOKENINVALID
		msg = "missing or invalid access token"
	case errors.Is(err, entities.ErrUnsupportedFile):
		status = http.StatusUnsupportedMediaType
		code = api.UNSUPPORTEDFILE
		msg = "only PDF, DOCX and plain text resumes are accepted"
	case errors.Is(err, entities.ErrQueueFull):
		status = http.StatusServiceUnavailable
		code = api.QUEUEFULL
		msg = "analysis queue is full, try again later"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.BADREQUEST, msg))
}

// currentUser pulls the authenticated user id set by the auth middleware.
func currentUser(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, entities.ErrTokenInvalid
	}
	return id, nil
}
