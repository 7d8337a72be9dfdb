package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes account operations.
type UserInterface interface {
	CreateUser(ctx context.Context, email, hashedPassword string) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*entities.User, error)
	LinkFolder(ctx context.Context, userID uuid.UUID, folderID string) (*entities.User, error)
	MarkFilenamesProcessed(ctx context.Context, userID uuid.UUID, filenames []string) error
}

// AnalysisInterface exposes resume analysis record operations.
type AnalysisInterface interface {
	CreateAnalysis(ctx context.Context, a entities.ResumeAnalysis) (*entities.ResumeAnalysis, error)
	UpdateAnalysis(ctx context.Context, id uuid.UUID, upd entities.AnalysisUpdate) (*entities.ResumeAnalysis, error)
	ListAnalyses(ctx context.Context, userID uuid.UUID) ([]entities.ResumeAnalysis, error)
	GetAnalysis(ctx context.Context, id, userID uuid.UUID) (*entities.ResumeAnalysis, error)
}
