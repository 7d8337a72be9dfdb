package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/drjayaswal/biasbreaker-backend/config"
	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	user, err := repo.CreateUser(ctx, "alice@example.com", "$2a$10$hash")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)
	require.Empty(t, user.LinkedFolderIDs)

	_, err = repo.CreateUser(ctx, "alice@example.com", "$2a$10$other")
	require.ErrorIs(t, err, entities.ErrEmailExists)

	byEmail, err := repo.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetUserByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	linked, err := repo.LinkFolder(ctx, user.ID, "folder-a")
	require.NoError(t, err)
	require.Equal(t, []string{"folder-a"}, linked.LinkedFolderIDs)

	linked, err = repo.LinkFolder(ctx, user.ID, "folder-b")
	require.NoError(t, err)
	require.Equal(t, []string{"folder-a", "folder-b"}, linked.LinkedFolderIDs)

	// re-linking moves the folder to the tail
	linked, err = repo.LinkFolder(ctx, user.ID, "folder-a")
	require.NoError(t, err)
	require.Equal(t, []string{"folder-b", "folder-a"}, linked.LinkedFolderIDs)

	_, err = repo.LinkFolder(ctx, uuid.New(), "folder-x")
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	require.NoError(t, repo.MarkFilenamesProcessed(ctx, user.ID, []string{"cv1.pdf", "cv2.pdf"}))
	byID, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"cv1.pdf", "cv2.pdf"}, byID.ProcessedFilenames)

	require.ErrorIs(t, repo.MarkFilenamesProcessed(ctx, uuid.New(), []string{"x"}), entities.ErrUserNotFound)
}

func TestRepositoryAnalysesIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	user, err := repo.CreateUser(ctx, "bob@example.com", "$2a$10$hash")
	require.NoError(t, err)

	first, err := repo.CreateAnalysis(ctx, entities.ResumeAnalysis{
		UserID:   user.ID,
		Filename: "cv1.pdf",
		S3Key:    "resumes/k1",
		Status:   entities.StatusProcessing,
	})
	require.NoError(t, err)
	require.Equal(t, entities.StatusProcessing, first.Status)
	require.False(t, first.CreatedAt.IsZero())

	// created_at drives the listing order
	time.Sleep(10 * time.Millisecond)

	second, err := repo.CreateAnalysis(ctx, entities.ResumeAnalysis{
		UserID:   user.ID,
		Filename: "cv2.pdf",
		Status:   entities.StatusProcessing,
	})
	require.NoError(t, err)
	require.Empty(t, second.S3Key)

	_, err = repo.CreateAnalysis(ctx, entities.ResumeAnalysis{UserID: uuid.New(), Filename: "x.pdf"})
	require.ErrorIs(t, err, entities.ErrUserNotFound)

	score := 0.73
	updated, err := repo.UpdateAnalysis(ctx, first.ID, entities.AnalysisUpdate{
		Status:  entities.StatusCompleted,
		Score:   &score,
		Details: map[string]any{"summary": "solid"},
	})
	require.NoError(t, err)
	require.Equal(t, entities.StatusCompleted, updated.Status)
	require.InDelta(t, 0.73, updated.MatchScore, 1e-9)
	require.Equal(t, "solid", updated.Details["summary"])
	require.NotNil(t, updated.UpdatedAt)

	failed, err := repo.UpdateAnalysis(ctx, second.ID, entities.AnalysisUpdate{Status: entities.StatusFailed})
	require.NoError(t, err)
	require.Equal(t, entities.StatusFailed, failed.Status)
	require.Zero(t, failed.MatchScore)
	require.NotNil(t, failed.Details)
	require.Empty(t, failed.Details)

	_, err = repo.UpdateAnalysis(ctx, uuid.New(), entities.AnalysisUpdate{Status: entities.StatusFailed})
	require.ErrorIs(t, err, entities.ErrAnalysisNotFound)

	list, err := repo.ListAnalyses(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)

	got, err := repo.GetAnalysis(ctx, first.ID, user.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, got.ID)

	// records are invisible to other accounts
	stranger, err := repo.CreateUser(ctx, "eve@example.com", "$2a$10$hash")
	require.NoError(t, err)
	_, err = repo.GetAnalysis(ctx, first.ID, stranger.ID)
	require.ErrorIs(t, err, entities.ErrAnalysisNotFound)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=biasbreaker_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8000, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "biasbreaker_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=biasbreaker_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
