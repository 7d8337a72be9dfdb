package domain

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
	"github.com/drjayaswal/biasbreaker-backend/internal/extract"
)

// AnalyzeUpload stores one uploaded resume in S3, records it as processing and
// schedules the scoring job. The returned record reflects the queued state.
func (u *Usecase) AnalyzeUpload(ctx context.Context, userID uuid.UUID, content []byte, filename, contentType, description string) (*entities.ResumeAnalysis, error) {
	if userID == uuid.Nil || filename == "" || len(content) == 0 {
		return nil, fmt.Errorf("%w: file is required", entities.ErrInvalidArgument)
	}
	if !extract.Supported(contentType) {
		return nil, fmt.Errorf("%w: %s", entities.ErrUnsupportedFile, contentType)
	}

	// extraction failures are non-fatal, the ML service re-reads the object
	if text := extract.Text(content, contentType); text == "" {
		u.log.Infow("no text extracted from upload", "filename", filename, "mime_type", contentType)
	}

	key, fileURL, err := u.deps.Store.Upload(ctx, content, filename, contentType)
	if err != nil {
		return nil, err
	}

	createCtx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	record, err := u.repo.CreateAnalysis(createCtx, entities.ResumeAnalysis{
		UserID:   userID,
		Filename: filename,
		S3Key:    key,
		Status:   entities.StatusProcessing,
	})
	if err != nil {
		return nil, err
	}

	recordID := record.ID
	err = u.deps.Pool.Submit("analyze-s3", func(jobCtx context.Context) {
		res, err := u.deps.Analyzer.AnalyzeS3(jobCtx, filename, fileURL, description)
		u.finishAnalysis(jobCtx, recordID, res, err)
	})
	if err != nil {
		u.failAnalysis(ctx, recordID)
		return nil, err
	}

	return record, nil
}

// AnalyzeDriveFolder lists a linked folder, records every not yet processed
// resume as processing and schedules one batch scoring job for them.
func (u *Usecase) AnalyzeDriveFolder(ctx context.Context, userID uuid.UUID, folderID, googleToken, description string) ([]entities.ResumeAnalysis, error) {
	if userID == uuid.Nil || folderID == "" || googleToken == "" {
		return nil, fmt.Errorf("%w: folder id and google token are required", entities.ErrInvalidArgument)
	}

	files, err := u.deps.Drive.ListFolder(ctx, googleToken, folderID)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	user, err := u.repo.GetUserByID(dbCtx, userID)
	if err != nil {
		return nil, err
	}

	processed := make(map[string]struct{}, len(user.ProcessedFilenames))
	for _, name := range user.ProcessedFilenames {
		processed[name] = struct{}{}
	}

	type queuedFile struct {
		file     entities.DriveFile
		recordID uuid.UUID
	}

	records := make([]entities.ResumeAnalysis, 0, len(files))
	pending := make([]queuedFile, 0, len(files))
	names := make([]string, 0, len(files))
	for _, f := range files {
		if _, done := processed[f.Name]; done {
			continue
		}

		record, err := u.repo.CreateAnalysis(dbCtx, entities.ResumeAnalysis{
			UserID:   userID,
			Filename: f.Name,
			Status:   entities.StatusProcessing,
		})
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
		pending = append(pending, queuedFile{file: f, recordID: record.ID})
		names = append(names, f.Name)
	}

	if len(pending) == 0 {
		u.log.Infow("no new resumes in folder", "folder_id", folderID, "user_id", userID)
		return records, nil
	}

	if err := u.repo.MarkFilenamesProcessed(dbCtx, userID, names); err != nil {
		return nil, err
	}

	err = u.deps.Pool.Submit("analyze-drive", func(jobCtx context.Context) {
		for _, q := range pending {
			res, err := u.deps.Analyzer.AnalyzeDrive(jobCtx, q.file, googleToken, description)
			u.finishAnalysis(jobCtx, q.recordID, res, err)
		}
	})
	if err != nil {
		for _, q := range pending {
			u.failAnalysis(ctx, q.recordID)
		}
		return nil, err
	}

	u.log.Infow("drive batch queued", "folder_id", folderID, "files", len(pending))
	return records, nil
}

// ListAnalyses returns the account's records, newest first.
func (u *Usecase) ListAnalyses(ctx context.Context, userID uuid.UUID) ([]entities.ResumeAnalysis, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListAnalyses(ctx, userID)
}

// Analysis returns one record scoped to its owner.
func (u *Usecase) Analysis(ctx context.Context, userID, analysisID uuid.UUID) (*entities.ResumeAnalysis, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == uuid.Nil || analysisID == uuid.Nil {
		return nil, fmt.Errorf("%w: analysis id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetAnalysis(ctx, analysisID, userID)
}

// DownloadURL presigns a short-lived link to the stored resume file.
func (u *Usecase) DownloadURL(ctx context.Context, userID, analysisID uuid.UUID) (string, error) {
	record, err := u.Analysis(ctx, userID, analysisID)
	if err != nil {
		return "", err
	}
	if record.S3Key == "" {
		return "", entities.ErrNoFileURL
	}
	return u.deps.Store.SecureURL(ctx, record.S3Key)
}

// finishAnalysis applies a scoring outcome to a record from a background job.
func (u *Usecase) finishAnalysis(ctx context.Context, recordID uuid.UUID, res *entities.AnalysisResult, analyzeErr error) {
	updCtx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if analyzeErr != nil {
		u.log.Errorw("analysis failed", "error", analyzeErr, "analysis_id", recordID)
		if _, err := u.repo.UpdateAnalysis(updCtx, recordID, entities.AnalysisUpdate{Status: entities.StatusFailed}); err != nil {
			u.log.Errorw("failed to mark analysis failed", "error", err, "analysis_id", recordID)
		}
		return
	}

	score := res.MatchScore
	if _, err := u.repo.UpdateAnalysis(updCtx, recordID, entities.AnalysisUpdate{
		Status:  entities.StatusCompleted,
		Score:   &score,
		Details: res.Details,
	}); err != nil {
		u.log.Errorw("failed to store analysis result", "error", err, "analysis_id", recordID)
	}
}

func (u *Usecase) failAnalysis(ctx context.Context, recordID uuid.UUID) {
	updCtx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.repo.UpdateAnalysis(updCtx, recordID, entities.AnalysisUpdate{Status: entities.StatusFailed}); err != nil {
		u.log.Errorw("failed to mark analysis failed", "error", err, "analysis_id", recordID)
	}
}
