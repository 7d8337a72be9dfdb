// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/drjayaswal/biasbreaker-backend/internal/usecase"
)

// Handler serves the HTTP routes using the service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler set with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// Register mounts all routes; authed gates the account-scoped ones.
func (h *Handler) Register(app *fiber.App, authed fiber.Handler) {
	app.Get("/", h.Root)

	app.Post("/auth/register", h.PostAuthRegister)
	app.Post("/auth/login", h.PostAuthLogin)

	app.Get("/users/me", authed, h.GetUsersMe)
	app.Post("/users/link-folder", authed, h.PostUsersLinkFolder)
	app.Get("/users/latest-folder", authed, h.GetUsersLatestFolder)

	app.Get("/get-folder/:folderId", authed, h.GetFolder)

	app.Post("/analyze/upload", authed, h.PostAnalyzeUpload)
	app.Post("/analyze/drive", authed, h.PostAnalyzeDrive)
	app.Get("/analyses", authed, h.GetAnalyses)
	app.Get("/analyses/:id", authed, h.GetAnalysis)
	app.Get("/analyses/:id/download", authed, h.GetAnalysisDownload)
}

// Root answers the welcome probe.
func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Welcome"})
}
