package handlers_fiber

import (
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/drjayaswal/biasbreaker-backend/internal/api"
	"github.com/drjayaswal/biasbreaker-backend/internal/mapper"
)

// PostAnalyzeUpload accepts one resume file and queues its scoring.
func (h *Handler) PostAnalyzeUpload(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.log.Errorw("failed to open upload", "error", err.Error())
		return badRequest(c, "unreadable file")
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		h.log.Errorw("failed to read upload", "error", err.Error())
		return badRequest(c, "unreadable file")
	}

	record, err := h.uc.AnalyzeUpload(
		c.Context(),
		userID,
		content,
		fileHeader.Filename,
		fileHeader.Header.Get(fiber.HeaderContentType),
		c.FormValue("description"),
	)
	if err != nil {
		h.log.Errorw("failed to queue upload analysis", "error", err.Error())
		return writeError(c, err)
	}

	resp := struct {
		Analysis api.ResumeAnalysis `json:"analysis"`
	}{Analysis: mapper.ToAPIAnalysis(*record)}
	return c.Status(http.StatusAccepted).JSON(resp)
}

// PostAnalyzeDrive queues scoring for every new resume of a Drive folder.
func (h *Handler) PostAnalyzeDrive(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	var body api.AnalyzeDriveRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badRequest(c, "invalid body")
	}

	records, err := h.uc.AnalyzeDriveFolder(c.Context(), userID, body.FolderId, body.GoogleToken, body.Description)
	if err != nil {
		h.log.Errorw("failed to queue drive analysis", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusAccepted).JSON(api.AnalysisListResponse{
		Analyses: mapper.ToAPIAnalysisList(records),
	})
}

// GetAnalyses returns the account's analysis records, newest first.
func (h *Handler) GetAnalyses(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	records, err := h.uc.ListAnalyses(c.Context(), userID)
	if err != nil {
		h.log.Errorw("failed to list analyses", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.AnalysisListResponse{
		Analyses: mapper.ToAPIAnalysisList(records),
	})
}

// GetAnalysis returns one analysis record.
func (h *Handler) GetAnalysis(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid analysis id")
	}

	record, err := h.uc.Analysis(c.Context(), userID, analysisID)
	if err != nil {
		return writeError(c, err)
	}

	resp := struct {
		Analysis api.ResumeAnalysis `json:"analysis"`
	}{Analysis: mapper.ToAPIAnalysis(*record)}
	return c.Status(http.StatusOK).JSON(resp)
}

// GetAnalysisDownload presigns a short-lived URL for the stored resume.
func (h *Handler) GetAnalysisDownload(c *fiber.Ctx) error {
	userID, err := currentUser(c)
	if err != nil {
		return writeError(c, err)
	}

	analysisID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid analysis id")
	}

	url, err := h.uc.DownloadURL(c.Context(), userID, analysisID)
	if err != nil {
		h.log.Errorw("failed to presign download", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.DownloadResponse{Url: url})
}
