// Package domain contains application usecases orchestrating the resume flows.
package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
	"github.com/drjayaswal/biasbreaker-backend/internal/repository"
	"github.com/drjayaswal/biasbreaker-backend/internal/worker"
)

// TokenMinter mints access tokens for authenticated accounts.
type TokenMinter interface {
	CreateAccessToken(userID uuid.UUID, email string) (string, error)
}

// ObjectStore keeps resume files and presigns download links.
type ObjectStore interface {
	Upload(ctx context.Context, content []byte, filename, contentType string) (key, url string, err error)
	SecureURL(ctx context.Context, key string) (string, error)
}

// FolderLister lists resumes in a Drive folder.
type FolderLister interface {
	ListFolder(ctx context.Context, accessToken, folderID string) ([]entities.DriveFile, error)
}

// Analyzer scores resumes through the external ML service.
type Analyzer interface {
	AnalyzeS3(ctx context.Context, filename, fileURL, description string) (*entities.AnalysisResult, error)
	AnalyzeDrive(ctx context.Context, file entities.DriveFile, googleToken, description string) (*entities.AnalysisResult, error)
}

// JobPool accepts background work.
type JobPool interface {
	Submit(name string, job worker.Job) error
}

// Deps groups the collaborators of the usecase layer beside the repository.
type Deps struct {
	Tokens   TokenMinter
	Store    ObjectStore
	Drive    FolderLister
	Analyzer Analyzer
	Pool     JobPool
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
	deps    Deps
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	deps Deps,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		timeout: timeout,
		deps:    deps,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
