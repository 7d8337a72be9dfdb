// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailExists signals registration with an already used email.
	ErrEmailExists = errors.New("email exists")
	// ErrInvalidCredentials signals a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenInvalid signals a missing, malformed or expired access token.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrAnalysisNotFound signals a missing analysis record.
	ErrAnalysisNotFound = errors.New("analysis not found")
	// ErrUnsupportedFile signals an upload with an unsupported content type.
	ErrUnsupportedFile = errors.New("unsupported file type")
	// ErrQueueFull signals that the background pool cannot accept more work.
	ErrQueueFull = errors.New("queue full")
	// ErrNoFileURL signals a download request for a record without an S3 object.
	ErrNoFileURL = errors.New("no file url")
)
