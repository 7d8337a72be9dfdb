// Package worker runs analysis jobs detached from request lifecycles.
package worker

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/drjayaswal/biasbreaker-backend/config"
	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

// Job is a unit of background work. It receives the pool's base context, not
// the context of the request that submitted it.
type Job func(ctx context.Context)

// Pool is a fixed-size worker pool with a bounded queue.
type Pool struct {
	baseCtx context.Context
	cancel  context.CancelFunc
	log     *zap.SugaredLogger
	queue   chan queued
	size    int
	wg      sync.WaitGroup

	mu      sync.Mutex
	stopped bool
}

type queued struct {
	name string
	job  Job
}

// New creates a pool; call OnStart to launch the workers.
func New(ctx context.Context, log *zap.SugaredLogger, cfg config.WorkerConfig) *Pool {
	size := cfg.Size
	if size <= 0 {
		size = 1
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = size
	}

	// jobs drained during shutdown must not run against the already
	// canceled signal context
	baseCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	return &Pool{
		baseCtx: baseCtx,
		cancel:  cancel,
		log:     log.Named("worker"),
		queue:   make(chan queued, queueSize),
		size:    size,
	}
}

// OnStart launches the workers.
func (p *Pool) OnStart(_ context.Context) error {
	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
	p.log.Infow("worker pool started", "workers", p.size, "queue", cap(p.queue))
	return nil
}

// OnStop closes the queue and waits for in-flight jobs to finish.
func (p *Pool) OnStop(_ context.Context) error {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.queue)
	}
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
	p.log.Infow("worker pool stopped")
	return nil
}

// Submit enqueues a job without blocking. A full queue or a stopped pool
// returns ErrQueueFull.
func (p *Pool) Submit(name string, job Job) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return entities.ErrQueueFull
	}

	select {
	case p.queue <- queued{name: name, job: job}:
		return nil
	default:
		p.log.Errorw("queue full, job rejected", "job", name)
		return entities.ErrQueueFull
	}
}

func (p *Pool) run(id int) {
	defer p.wg.Done()
	for q := range p.queue {
		p.log.Debugw("job started", "job", q.name, "worker", id)
		q.job(p.baseCtx)
		p.log.Debugw("job finished", "job", q.name, "worker", id)
	}
}
