package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

// AuthUsecaseInterface abstracts account operations for the delivery layer.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, email, password string) (*entities.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entities.User, error)
}

// FolderUsecaseInterface abstracts Drive folder operations.
type FolderUsecaseInterface interface {
	LinkFolder(ctx context.Context, userID uuid.UUID, folderID string) (*entities.User, error)
	LatestFolder(ctx context.Context, userID uuid.UUID) (string, error)
	FolderFiles(ctx context.Context, googleToken, folderID string) ([]entities.DriveFile, error)
}

// AnalysisUsecaseInterface abstracts resume analysis operations.
type AnalysisUsecaseInterface interface {
	AnalyzeUpload(ctx context.Context, userID uuid.UUID, content []byte, filename, contentType, description string) (*entities.ResumeAnalysis, error)
	AnalyzeDriveFolder(ctx context.Context, userID uuid.UUID, folderID, googleToken, description string) ([]entities.ResumeAnalysis, error)
	ListAnalyses(ctx context.Context, userID uuid.UUID) ([]entities.ResumeAnalysis, error)
	Analysis(ctx context.Context, userID, analysisID uuid.UUID) (*entities.ResumeAnalysis, error)
	DownloadURL(ctx context.Context, userID, analysisID uuid.UUID) (string, error)
}
