package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

// LinkFolder attaches a Drive folder to the account and returns the updated user.
func (u *Usecase) LinkFolder(ctx context.Context, userID uuid.UUID, folderID string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == uuid.Nil || folderID == "" {
		return nil, fmt.Errorf("%w: user id and folder id are required", entities.ErrInvalidArgument)
	}

	return u.repo.LinkFolder(ctx, userID, folderID)
}

// LatestFolder returns the most recently linked folder id, empty when none.
func (u *Usecase) LatestFolder(ctx context.Context, userID uuid.UUID) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == uuid.Nil {
		return "", fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.LatestFolderID(), nil
}

// FolderFiles lists the resumes of a Drive folder with the caller's token.
// Listing times are bounded by the Drive API, not our request timeout.
func (u *Usecase) FolderFiles(ctx context.Context, googleToken, folderID string) ([]entities.DriveFile, error) {
	if googleToken == "" || folderID == "" {
		return nil, fmt.Errorf("%w: google token and folder id are required", entities.ErrInvalidArgument)
	}

	return u.deps.Drive.ListFolder(ctx, googleToken, folderID)
}
