// Package analyzer calls the external ML scoring service.
package analyzer

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/drjayaswal/biasbreaker-backend/config"
	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

// Client posts resumes to the ML service and decodes scoring results.
type Client struct {
	log           *zap.SugaredLogger
	rest          *resty.Client
	uploadTimeout time.Duration
	driveTimeout  time.Duration
}

type s3Request struct {
	Filename    string `json:"filename"`
	FileURL     string `json:"file_url"`
	Description string `json:"description"`
}

type driveRequest struct {
	FileID      string `json:"file_id"`
	GoogleToken string `json:"google_token"`
	Filename    string `json:"filename"`
	MimeType    string `json:"mime_type"`
	Description string `json:"description"`
}

type analysisResponse struct {
	MatchScore      float64        `json:"match_score"`
	AnalysisDetails map[string]any `json:"analysis_details"`
}

// New builds the client from config.
func New(log *zap.SugaredLogger, cfg config.MLConfig) *Client {
	rest := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetRetryCount(cfg.RetryCount).
		SetHeader("Content-Type", "application/json")

	return &Client{
		log:           log.Named("analyzer"),
		rest:          rest,
		uploadTimeout: cfg.UploadTimeout,
		driveTimeout:  cfg.DriveTimeout,
	}
}

// AnalyzeS3 scores a single uploaded resume reachable at a presigned URL.
func (c *Client) AnalyzeS3(ctx context.Context, filename, fileURL, description string) (*entities.AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	return c.post(ctx, "/analyze-s3", s3Request{
		Filename:    filename,
		FileURL:     fileURL,
		Description: description,
	})
}

// AnalyzeDrive scores one Drive file; the ML service fetches it with the token.
func (c *Client) AnalyzeDrive(ctx context.Context, file entities.DriveFile, googleToken, description string) (*entities.AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.driveTimeout)
	defer cancel()

	return c.post(ctx, "/analyze-drive", driveRequest{
		FileID:      file.ID,
		GoogleToken: googleToken,
		Filename:    file.Name,
		MimeType:    file.MimeType,
		Description: description,
	})
}

func (c *Client) post(ctx context.Context, path string, body any) (*entities.AnalysisResult, error) {
	var out analysisResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post(path)
	if err != nil {
		c.log.Errorw("analysis request failed", "error", err, "path", path)
		return nil, fmt.Errorf("analysis request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.Errorw("analysis rejected", "status", resp.StatusCode(), "path", path, "body", resp.String())
		return nil, fmt.Errorf("analysis rejected: status %d", resp.StatusCode())
	}

	details := out.AnalysisDetails
	if details == nil {
		details = map[string]any{}
	}
	return &entities.AnalysisResult{
		MatchScore: out.MatchScore,
		Details:    details,
	}, nil
}
