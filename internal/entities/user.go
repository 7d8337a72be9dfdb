package entities

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain representation of an account.
type User struct {
	ID                 uuid.UUID
	Email              string
	HashedPassword     string
	LinkedFolderIDs    []string
	ProcessedFilenames []string
	UpdatedAt          time.Time
	Analyses           []ResumeAnalysis
}

// LatestFolderID returns the most recently linked folder id, empty when none.
func (u User) LatestFolderID() string {
	if len(u.LinkedFolderIDs) == 0 {
		return ""
	}
	return u.LinkedFolderIDs[len(u.LinkedFolderIDs)-1]
}
