// Package api contains transport DTOs for the HTTP surface. Error codes are
// machine-readable strings carried next to a human message.
package api

import (
	"time"

	"github.com/google/uuid"
)

// ErrorResponseErrorCode is a machine-readable error discriminator.
type ErrorResponseErrorCode string

// Error codes returned by the service.
const (
	NOTFOUND           ErrorResponseErrorCode = "NOT_FOUND"
	EMAILEXISTS        ErrorResponseErrorCode = "EMAIL_EXISTS"
	INVALIDCREDENTIALS ErrorResponseErrorCode = "INVALID_CREDENTIALS"
	TOKENINVALID       ErrorResponseErrorCode = "TOKEN_INVALID"
	UNSUPPORTEDFILE    ErrorResponseErrorCode = "UNSUPPORTED_FILE"
	QUEUEFULL          ErrorResponseErrorCode = "QUEUE_FULL"
	BADREQUEST         ErrorResponseErrorCode = "BAD_REQUEST"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// RegisterRequest carries new account credentials.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a bearer token after login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// User is the account transport model.
type User struct {
	ID                 uuid.UUID        `json:"id"`
	Email              string           `json:"email"`
	LinkedFolderIds    []string         `json:"linked_folder_ids"`
	ProcessedFilenames []string         `json:"processed_filenames"`
	UpdatedAt          time.Time        `json:"updated_at"`
	Analyses           []ResumeAnalysis `json:"analyses"`
}

// ResumeAnalysis is the analysis record transport model.
type ResumeAnalysis struct {
	ID         uuid.UUID      `json:"id"`
	Filename   string         `json:"filename"`
	Status     string         `json:"status"`
	MatchScore float64        `json:"match_score"`
	Details    map[string]any `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
}

// FolderLinkRequest asks to attach a Drive folder to the account.
type FolderLinkRequest struct {
	FolderId string `json:"folder_id"`
}

// LatestFolderResponse returns the most recently linked folder.
type LatestFolderResponse struct {
	LatestFolderId *string `json:"latest_folder_id"`
}

// DriveFile describes one file of a Drive folder listing.
type DriveFile struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// DriveFileListResponse wraps a folder listing.
type DriveFileListResponse struct {
	Files []DriveFile `json:"files"`
}

// AnalyzeDriveRequest asks to score every new resume of a linked folder.
type AnalyzeDriveRequest struct {
	FolderId    string `json:"folder_id"`
	GoogleToken string `json:"google_token"`
	Description string `json:"description"`
}

// AnalysisListResponse wraps the account's analysis records.
type AnalysisListResponse struct {
	Analyses []ResumeAnalysis `json:"analyses"`
}

// DownloadResponse carries a short-lived presigned object URL.
type DownloadResponse struct {
	Url string `json:"url"`
}
