package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countJob struct {
	id      int
	counter *atomic.Int64
}

type countResult struct {
	id  int
	err error
}

func (r *countResult) GetError() error { return r.err }

func (j *countJob) Execute(ctx context.Context) Result {
	j.counter.Add(1)
	return &countResult{id: j.id}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(context.Background(), 4)
	pool.Start()
	for i := 0; i < 50; i++ {
		pool.Submit(&countJob{id: i, counter: &counter})
	}
	results := pool.Wait()

	if got := counter.Load(); got != 50 {
		t.Errorf("Expected 50 executions, got %d", got)
	}
	if len(results) != 50 {
		t.Fatalf("Expected 50 results, got %d", len(results))
	}
	seen := map[int]bool{}
	for _, r := range results {
		seen[r.(*countResult).id] = true
	}
	if len(seen) != 50 {
		t.Errorf("Expected 50 distinct job ids, got %d", len(seen))
	}
}

func TestPool_LargeBatchDoesNotStall(t *testing.T) {
	// Far more jobs than queue capacity; Wait must still drain everything.
	var counter atomic.Int64
	pool := NewPool(context.Background(), 2)
	pool.Start()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			pool.Submit(&countJob{id: i, counter: &counter})
		}
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Submit stalled")
	}

	if results := pool.Wait(); len(results) != 500 {
		t.Errorf("Expected 500 results, got %d", len(results))
	}
}

func TestPool_ZeroWorkersClampedToOne(t *testing.T) {
	var counter atomic.Int64
	pool := NewPool(context.Background(), 0)
	pool.Start()
	pool.Submit(&countJob{id: 1, counter: &counter})
	if results := pool.Wait(); len(results) != 1 {
		t.Errorf("Expected 1 result, got %d", len(results))
	}
}

type blockJob struct{}

func (j *blockJob) Execute(ctx context.Context) Result {
	<-ctx.Done()
	return &countResult{err: ctx.Err()}
}

func TestPool_ShutdownCancelsRunningJobs(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()
	pool.Submit(&blockJob{})
	pool.Submit(&blockJob{})

	finished := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("Shutdown did not cancel running jobs")
	}
}
