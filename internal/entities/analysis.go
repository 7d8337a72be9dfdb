package entities

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisStatus enumerates resume analysis lifecycle states.
type AnalysisStatus string

const (
	// StatusPending marks a record created but not yet picked up.
	StatusPending AnalysisStatus = "pending"
	// StatusProcessing marks a record with an in-flight analysis.
	StatusProcessing AnalysisStatus = "processing"
	// StatusCompleted marks a scored record.
	StatusCompleted AnalysisStatus = "completed"
	// StatusFailed marks a record whose analysis did not finish.
	StatusFailed AnalysisStatus = "failed"
)

// ResumeAnalysis is a domain model of one scored resume.
type ResumeAnalysis struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Filename   string
	S3Key      string
	Status     AnalysisStatus
	MatchScore float64
	Details    map[string]any
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// AnalysisUpdate carries the fields a background job may change on a record.
type AnalysisUpdate struct {
	Status  AnalysisStatus
	Score   *float64
	Details map[string]any
}
