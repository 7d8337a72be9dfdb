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
	insertAnalysisQuery = `INSERT INTO resume_analyses(id, user_id, filename, s3_key, status, match_score, details)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
RETURNING created_at`

	updateAnalysisQuery = `UPDATE resume_analyses
SET status = $2,
    match_score = COALESCE($3, match_score),
    details = COALESCE($4, details),
    updated_at = NOW()
WHERE id = $1
RETURNING id, user_id, filename, COALESCE(s3_key, ''), status, match_score, details, created_at, updated_at`

	selectAnalysesQuery = `SELECT id, user_id, filename, COALESCE(s3_key, ''), status, match_score, details, created_at, updated_at
FROM resume_analyses WHERE user_id = $1
ORDER BY created_at DESC`

	selectAnalysisQuery = `SELECT id, user_id, filename, COALESCE(s3_key, ''), status, match_score, details, created_at, updated_at
FROM resume_analyses WHERE id = $1 AND user_id = $2`
)

// CreateAnalysis inserts a new analysis record.
func (p *Postgres) CreateAnalysis(ctx context.Context, a entities.ResumeAnalysis) (*entities.ResumeAnalysis, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = entities.StatusPending
	}
	if a.Details == nil {
		a.Details = map[string]any{}
	}

	err := p.db.QueryRow(ctx, insertAnalysisQuery,
		a.ID, a.UserID, a.Filename, a.S3Key, a.Status, a.MatchScore, a.Details).
		Scan(&a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrUserNotFound
		}
		p.log.Errorw("failed to create analysis", "error", err, "filename", a.Filename)
		return nil, fmt.Errorf("create analysis: %w", err)
	}

	p.log.Infow("analysis created", "analysis_id", a.ID, "user_id", a.UserID, "filename", a.Filename)
	return &a, nil
}

// UpdateAnalysis applies a background job outcome to a record.
func (p *Postgres) UpdateAnalysis(ctx context.Context, id uuid.UUID, upd entities.AnalysisUpdate) (*entities.ResumeAnalysis, error) {
	// a nil map would encode as jsonb 'null' instead of SQL NULL and the
	// COALESCE would overwrite the stored details with it
	var details any
	if upd.Details != nil {
		details = upd.Details
	}

	var a entities.ResumeAnalysis
	err := p.db.QueryRow(ctx, updateAnalysisQuery, id, upd.Status, upd.Score, details).
		Scan(&a.ID, &a.UserID, &a.Filename, &a.S3Key, &a.Status, &a.MatchScore, &a.Details, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAnalysisNotFound
		}
		p.log.Errorw("failed to update analysis", "error", err, "analysis_id", id)
		return nil, fmt.Errorf("update analysis: %w", err)
	}

	p.log.Infow("analysis updated", "analysis_id", id, "status", a.Status)
	return &a, nil
}

// ListAnalyses returns the account's records, newest first.
func (p *Postgres) ListAnalyses(ctx context.Context, userID uuid.UUID) ([]entities.ResumeAnalysis, error) {
	rows, err := p.db.Query(ctx, selectAnalysesQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	list := make([]entities.ResumeAnalysis, 0)
	for rows.Next() {
		var a entities.ResumeAnalysis
		if err := rows.Scan(&a.ID, &a.UserID, &a.Filename, &a.S3Key, &a.Status, &a.MatchScore, &a.Details, &a.CreatedAt, &a.UpdatedAt); err != nil {
			p.log.Errorw("failed to scan analysis", "error", err, "user_id", userID)
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		list = append(list, a)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate analyses", "error", err, "user_id", userID)
		return nil, fmt.Errorf("iterate analyses: %w", err)
	}

	return list, nil
}

// GetAnalysis returns one record scoped to its owner.
func (p *Postgres) GetAnalysis(ctx context.Context, id, userID uuid.UUID) (*entities.ResumeAnalysis, error) {
	var a entities.ResumeAnalysis
	err := p.db.QueryRow(ctx, selectAnalysisQuery, id, userID).
		Scan(&a.ID, &a.UserID, &a.Filename, &a.S3Key, &a.Status, &a.MatchScore, &a.Details, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAnalysisNotFound
		}
		p.log.Errorw("failed to get analysis", "error", err, "analysis_id", id)
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return &a, nil
}
