package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

const (
	insertUserQuery = `INSERT INTO users(id, email, hashed_password)
VALUES ($1, $2, $3)
RETURNING id, email, hashed_password, linked_folder_ids, processed_filenames, updated_at`

	selectUserByEmailQuery = `SELECT id, email, hashed_password, linked_folder_ids, processed_filenames, updated_at
FROM users WHERE email = $1`

	selectUserByIDQuery = `SELECT id, email, hashed_password, linked_folder_ids, processed_filenames, updated_at
FROM users WHERE id = $1`

	linkFolderQuery = `UPDATE users
SET linked_folder_ids = CASE
        WHEN $2 = ANY(linked_folder_ids) THEN array_remove(linked_folder_ids, $2) || $2
        ELSE array_append(linked_folder_ids, $2)
    END,
    updated_at = NOW()
WHERE id = $1
RETURNING id, email, hashed_password, linked_folder_ids, processed_filenames, updated_at`

	markProcessedQuery = `UPDATE users
SET processed_filenames = processed_filenames || $2, updated_at = NOW()
WHERE id = $1`
)

// CreateUser inserts a new account with a pre-hashed password.
func (p *Postgres) CreateUser(ctx context.Context, email, hashedPassword string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, insertUserQuery, uuid.New(), email, hashedPassword).
		Scan(&u.ID, &u.Email, &u.HashedPassword, &u.LinkedFolderIDs, &u.ProcessedFilenames, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrEmailExists
		}
		p.log.Errorw("failed to create user", "error", err, "email", email)
		return nil, fmt.Errorf("create user: %w", err)
	}

	p.log.Infow("user created", "user_id", u.ID)
	return &u, nil
}

// GetUserByEmail returns an account by email.
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByEmailQuery, email).
		Scan(&u.ID, &u.Email, &u.HashedPassword, &u.LinkedFolderIDs, &u.ProcessedFilenames, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// GetUserByID returns an account by id.
func (p *Postgres) GetUserByID(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, selectUserByIDQuery, userID).
		Scan(&u.ID, &u.Email, &u.HashedPassword, &u.LinkedFolderIDs, &u.ProcessedFilenames, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to get user by id", "error", err, "user_id", userID)
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// LinkFolder attaches a Drive folder to the account. Re-linking an already
// attached folder moves it to the tail so it becomes the latest.
func (p *Postgres) LinkFolder(ctx context.Context, userID uuid.UUID, folderID string) (*entities.User, error) {
	var u entities.User
	err := p.db.QueryRow(ctx, linkFolderQuery, userID, folderID).
		Scan(&u.ID, &u.Email, &u.HashedPassword, &u.LinkedFolderIDs, &u.ProcessedFilenames, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to link folder", "error", err, "user_id", userID, "folder_id", folderID)
		return nil, fmt.Errorf("link folder: %w", err)
	}

	p.log.Infow("folder linked", "user_id", userID, "folder_id", folderID)
	return &u, nil
}

// MarkFilenamesProcessed appends filenames to the account's processed list.
func (p *Postgres) MarkFilenamesProcessed(ctx context.Context, userID uuid.UUID, filenames []string) error {
	if len(filenames) == 0 {
		return nil
	}

	tag, err := p.db.Exec(ctx, markProcessedQuery, userID, filenames)
	if err != nil {
		p.log.Errorw("failed to mark filenames processed", "error", err, "user_id", userID)
		return fmt.Errorf("mark filenames processed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}
	return nil
}
