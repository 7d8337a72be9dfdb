// Package drive lists candidate resumes in Google Drive folders.
package drive

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

const pageSize = 100

// Client lists Drive folder contents with caller-supplied OAuth tokens.
type Client struct {
	log *zap.SugaredLogger
}

// NewClient builds a Drive listing client.
func NewClient(log *zap.SugaredLogger) *Client {
	return &Client{log: log.Named("drive")}
}

// ListFolder returns PDF and DOCX files of a folder, excluding trashed ones.
// The access token belongs to the end user and is used for this call only.
func (c *Client) ListFolder(ctx context.Context, accessToken, folderID string) ([]entities.DriveFile, error) {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})

	svc, err := gdrive.NewService(ctx, option.WithTokenSource(src))
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}

	query := fmt.Sprintf(
		"'%s' in parents and (mimeType = '%s' or mimeType = '%s') and trashed = false",
		folderID, entities.MimePDF, entities.MimeDOCX,
	)

	files := make([]entities.DriveFile, 0)
	pageToken := ""
	for {
		call := svc.Files.List().
			Context(ctx).
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType, size)").
			PageSize(pageSize)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		res, err := call.Do()
		if err != nil {
			c.log.Errorw("failed to list folder", "error", err, "folder_id", folderID)
			return nil, fmt.Errorf("list folder: %w", err)
		}

		for _, f := range res.Files {
			files = append(files, entities.DriveFile{
				ID:       f.Id,
				Name:     f.Name,
				MimeType: f.MimeType,
				Size:     f.Size,
			})
		}

		if res.NextPageToken == "" {
			break
		}
		pageToken = res.NextPageToken
	}

	c.log.Infow("folder listed", "folder_id", folderID, "files", len(files))
	return files, nil
}
