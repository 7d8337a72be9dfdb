package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/drjayaswal/biasbreaker-backend/internal/api"
	"github.com/drjayaswal/biasbreaker-backend/internal/mapper"
)

// headerGoogleToken carries the caller's Drive OAuth token.
const headerGoogleToken = "X-Google-Token"

// GetFolder lists PDF and DOCX resumes of a Drive folder.
func (h *Handler) GetFolder(c *fiber.Ctx) error {
	token := c.Get(headerGoogleToken)
	if token == "" {
		return badRequest(c, "missing "+headerGoogleToken+" header")
	}

	files, err := h.uc.FolderFiles(c.Context(), token, c.Params("folderId"))
	if err != nil {
		h.log.Errorw("failed to list folder", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.DriveFileListResponse{
		Files: mapper.ToAPIDriveFileList(files),
	})
}
