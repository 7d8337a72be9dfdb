package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/drjayaswal/biasbreaker-backend/internal/repository"
	"github.com/drjayaswal/biasbreaker-backend/internal/usecase/domain"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	FolderUsecaseInterface
	AnalysisUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration, deps domain.Deps) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, deps)
}
