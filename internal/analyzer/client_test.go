package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/drjayaswal/biasbreaker-backend/config"
	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

func testConfig(baseURL string) config.MLConfig {
	return config.MLConfig{
		BaseURL:       baseURL,
		UploadTimeout: 5 * time.Second,
		DriveTimeout:  5 * time.Second,
	}
}

func TestAnalyzeS3Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/analyze-s3", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "cv.pdf", body["filename"])
		require.Equal(t, "https://signed", body["file_url"])
		require.Equal(t, "backend role", body["description"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"match_score":      0.91,
			"analysis_details": map[string]any{"strengths": []string{"go"}},
		})
	}))
	t.Cleanup(srv.Close)

	c := New(zap.NewNop().Sugar(), testConfig(srv.URL))

	res, err := c.AnalyzeS3(context.Background(), "cv.pdf", "https://signed", "backend role")
	require.NoError(t, err)
	require.InDelta(t, 0.91, res.MatchScore, 1e-9)
	require.Contains(t, res.Details, "strengths")
}

func TestAnalyzeDriveSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/analyze-drive", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "f1", body["file_id"])
		require.Equal(t, "tok", body["google_token"])
		require.Equal(t, entities.MimePDF, body["mime_type"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"match_score": 0.4})
	}))
	t.Cleanup(srv.Close)

	c := New(zap.NewNop().Sugar(), testConfig(srv.URL))

	file := entities.DriveFile{ID: "f1", Name: "cv.pdf", MimeType: entities.MimePDF}
	res, err := c.AnalyzeDrive(context.Background(), file, "tok", "desc")
	require.NoError(t, err)
	require.InDelta(t, 0.4, res.MatchScore, 1e-9)
	require.NotNil(t, res.Details)
}

func TestAnalyzeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model overloaded", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := New(zap.NewNop().Sugar(), testConfig(srv.URL))

	_, err := c.AnalyzeS3(context.Background(), "cv.pdf", "https://signed", "d")
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}

func TestAnalyzeUnreachable(t *testing.T) {
	c := New(zap.NewNop().Sugar(), testConfig("http://127.0.0.1:1"))

	_, err := c.AnalyzeS3(context.Background(), "cv.pdf", "https://signed", "d")
	require.Error(t, err)
}
