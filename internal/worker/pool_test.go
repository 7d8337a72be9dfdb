package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/drjayaswal/biasbreaker-backend/config"
	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

func TestPoolRunsJobs(t *testing.T) {
	p := New(context.Background(), zap.NewNop().Sugar(), config.WorkerConfig{Size: 2, QueueSize: 8})
	require.NoError(t, p.OnStart(context.Background()))

	var count atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, p.Submit("job", func(_ context.Context) {
			count.Add(1)
		}))
	}

	require.NoError(t, p.OnStop(context.Background()))
	require.Equal(t, int32(5), count.Load())
}

func TestPoolQueueFull(t *testing.T) {
	p := New(context.Background(), zap.NewNop().Sugar(), config.WorkerConfig{Size: 1, QueueSize: 1})
	require.NoError(t, p.OnStart(context.Background()))
	t.Cleanup(func() { _ = p.OnStop(context.Background()) })

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, p.Submit("blocker", func(_ context.Context) {
		close(started)
		<-release
	}))
	<-started

	// worker busy, queue capacity one: second submit fills it, third must fail
	require.NoError(t, p.Submit("queued", func(_ context.Context) {}))
	require.ErrorIs(t, p.Submit("rejected", func(_ context.Context) {}), entities.ErrQueueFull)

	close(release)
}

func TestPoolStopDrains(t *testing.T) {
	p := New(context.Background(), zap.NewNop().Sugar(), config.WorkerConfig{Size: 1, QueueSize: 4})
	require.NoError(t, p.OnStart(context.Background()))

	var ran atomic.Bool
	require.NoError(t, p.Submit("slow", func(_ context.Context) {
		time.Sleep(20 * time.Millisecond)
		ran.Store(true)
	}))

	require.NoError(t, p.OnStop(context.Background()))
	require.True(t, ran.Load())
}

func TestPoolJobsSurviveParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	p := New(parent, zap.NewNop().Sugar(), config.WorkerConfig{Size: 1, QueueSize: 1})
	require.NoError(t, p.OnStart(context.Background()))

	// simulates shutdown: the signal context is gone before the drain
	cancel()

	jobErr := make(chan error, 1)
	require.NoError(t, p.Submit("drained", func(ctx context.Context) {
		jobErr <- ctx.Err()
	}))

	require.NoError(t, p.OnStop(context.Background()))
	require.NoError(t, <-jobErr)
}

func TestPoolRejectsAfterStop(t *testing.T) {
	p := New(context.Background(), zap.NewNop().Sugar(), config.WorkerConfig{Size: 1, QueueSize: 1})
	require.NoError(t, p.OnStart(context.Background()))
	require.NoError(t, p.OnStop(context.Background()))

	require.ErrorIs(t, p.Submit("late", func(_ context.Context) {}), entities.ErrQueueFull)
}
