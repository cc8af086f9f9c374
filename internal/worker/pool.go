// Package worker provides the concurrency primitives for batch claim
// grounding: a bounded job pool and a per-domain rate limiter shared by the
// collaborator clients.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed on the pool.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job.
type Result interface {
	GetError() error
}

// Pool runs jobs across a fixed number of workers. Results accumulate in
// memory, so Submit never blocks on an unread result.
type Pool struct {
	workers    int
	jobQueue   chan Job
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc

	mu      sync.Mutex
	results []Result
}

// NewPool creates a pool with the given worker count. Cancelling the parent
// context stops the workers and unblocks pending submits.
func NewPool(ctx context.Context, workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			p.mu.Lock()
			p.results = append(p.results, result)
			p.mu.Unlock()
		}
	}
}

// Submit queues a job for execution.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
	case p.jobQueue <- job:
	}
}

// Wait closes the queue, waits for all jobs, and returns their results.
func (p *Pool) Wait() []Result {
	close(p.jobQueue)
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.results
}

// Shutdown cancels outstanding work immediately and waits for the workers
// to exit.
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
}
