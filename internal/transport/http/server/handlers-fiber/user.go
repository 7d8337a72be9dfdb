package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/drjayaswal/biasbreaker-backend/internal/api"
	"github.com/drjayaswal/biasbreaker-backend/internal/mapper"
)

// GetUsersMe returns the account with its analyses.
func (h *Handler) GetUsersMe(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	user, err := h.uc.CurrentUser(c.Context(), userID)
	if err != nil {
		h.log.Errorw("failed to get current user", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)}
	return c.Status(http.StatusOK).JSON(resp)
}

// PostUsersLinkFolder attaches a Drive folder to the account.
func (h *Handler) PostUsersLinkFolder(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.FolderLinkRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	user, err := h.uc.LinkFolder(c.Context(), userID, body.FolderId)
	if err != nil {
		h.log.Errorw("failed to link folder", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		User api.User `json:"user"`
	}{User: mapper.ToAPIUser(*user)}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetUsersLatestFolder returns the most recently linked folder id.
func (h *Handler) GetUsersLatestFolder(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	latest, err := h.uc.LatestFolder(c.Context(), userID)
	if err != nil {
		h.log.Errorw("failed to get latest folder", "error", err.Error())
		return writeError(c, err)
	}

	resp := api.LatestFolderResponse{}
	if latest != "" {
		resp.LatestFolderId = &latest
	}
	return c.Status(http.StatusOK).JSON(resp)
}
