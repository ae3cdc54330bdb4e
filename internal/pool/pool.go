// ABOUTME: Worker pool for parallelizing per-generation fitness evaluation
// ABOUTME: Submit/Wait pattern backed by errgroup and a semaphore-bounded worker count

package pool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool bounds concurrent task execution to a fixed worker count.
// Submit enqueues a task; Wait blocks until every submitted task for the
// current batch has finished and returns the first error, if any.
type WorkerPool struct {
	group   *errgroup.Group
	ctx     context.Context
	workers int
}

// NewWorkerPool creates a pool sized to available CPUs, bounded by ctx.
// bufferSize is accepted for API compatibility with call sites sizing a
// pool to their batch size; errgroup's semaphore makes no direct use of
// it beyond the worker cap itself.
func NewWorkerPool(ctx context.Context, bufferSize int) *WorkerPool {
	workers := runtime.NumCPU()
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	return &WorkerPool{group: group, ctx: gctx, workers: workers}
}

// Submit schedules task to run on a worker goroutine. It blocks only long
// enough to acquire a free worker slot.
func (p *WorkerPool) Submit(task func() error) {
	p.group.Go(task)
}

// Wait blocks until every submitted task completes, returning the first
// error encountered, if any.
func (p *WorkerPool) Wait() error {
	return p.group.Wait()
}

// Context returns the pool's derived context, canceled as soon as any
// submitted task returns a non-nil error.
func (p *WorkerPool) Context() context.Context {
	return p.ctx
}
