// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/drjayaswal/biasbreaker-backend/internal/api"
	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

// ToAPIUser maps entities.User to transport model.
func ToAPIUser(u entities.User) api.User {
	folders := u.LinkedFolderIDs
	if folders == nil {
		folders = []string{}
	}
	processed := u.ProcessedFilenames
	if processed == nil {
		processed = []string{}
	}

	return api.User{
		ID:                 u.ID,
		Email:              u.Email,
		LinkedFolderIds:    folders,
		ProcessedFilenames: processed,
		UpdatedAt:          u.UpdatedAt,
		Analyses:           ToAPIAnalysisList(u.Analyses),
	}
}

// ToAPIAnalysis maps entities.ResumeAnalysis to transport model.
func ToAPIAnalysis(a entities.ResumeAnalysis) api.ResumeAnalysis {
	return api.ResumeAnalysis{
		ID:         a.ID,
		Filename:   a.Filename,
		Status:     string(a.Status),
		MatchScore: a.MatchScore,
		Details:    a.Details,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// ToAPIAnalysisList maps a slice of analyses to the transport slice.
func ToAPIAnalysisList(list []entities.ResumeAnalysis) []api.ResumeAnalysis {
	res := make([]api.ResumeAnalysis, 0, len(list))
	for _, a := range list {
		res = append(res, ToAPIAnalysis(a))
	}
	return res
}

// ToAPIDriveFile maps entities.DriveFile to transport model.
func ToAPIDriveFile(f entities.DriveFile) api.DriveFile {
	return api.DriveFile{
		Id:       f.ID,
		Name:     f.Name,
		MimeType: f.MimeType,
		Size:     f.Size,
	}
}

// ToAPIDriveFileList maps a folder listing to the transport slice.
func ToAPIDriveFileList(list []entities.DriveFile) []api.DriveFile {
	res := make([]api.DriveFile, 0, len(list))
	for _, f := range list {
		res = append(res, ToAPIDriveFile(f))
	}
	return res
}
