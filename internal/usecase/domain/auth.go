package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/drjayaswal/biasbreaker-backend/internal/auth"
	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

// Register creates an account with a bcrypt-hashed password.
func (u *Usecase) Register(ctx context.Context, email, password string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", entities.ErrInvalidArgument)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", entities.ErrInvalidArgument)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := u.repo.CreateUser(ctx, email, hashed)
	if err != nil {
		return nil, err
	}
	u.log.Infow("account registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and mints an access token. Unknown accounts and
// wrong passwords are indistinguishable to the caller.
func (u *Usecase) Login(ctx context.Context, email, password string) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password are required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return "", entities.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(password, user.HashedPassword) {
		u.log.Infow("failed login attempt", "user_id", user.ID)
		return "", entities.ErrInvalidCredentials
	}

	return u.deps.Tokens.CreateAccessToken(user.ID, user.Email)
}

// CurrentUser returns the account together with its analyses, newest first.
func (u *Usecase) CurrentUser(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}

	user, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	analyses, err := u.repo.ListAnalyses(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Analyses = analyses
	return user, nil
}
