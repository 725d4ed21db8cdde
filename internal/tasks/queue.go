// Package tasks runs fire-and-forget background work: full repository
// re-syncs and webhook-triggered re-imports. Requests enqueue and return
// immediately; failures are logged, never surfaced to the original caller.
package tasks

import (
	"context"
	"sync"
	"time"

	"deptrack-core/internal/logger"
)

// Task is a unit of background work
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Queue dispatches tasks to a fixed pool of worker goroutines
type Queue struct {
	tasks   chan Task
	wg      sync.WaitGroup
	timeout time.Duration
	log     *logger.Logger

	mu     sync.Mutex
	closed bool
}

// NewQueue creates a queue and starts its workers. timeout bounds each
// task's execution; tasks run on a context detached from any request.
func NewQueue(workers, buffer int, timeout time.Duration, log *logger.Logger) *Queue {
	if workers < 1 {
		workers = 1
	}

	q := &Queue{
		tasks:   make(chan Task, buffer),
		timeout: timeout,
		log:     log,
	}

	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}

	return q
}

// Enqueue submits a task. It reports false when the queue has shut down.
func (q *Queue) Enqueue(task Task) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.log.Warn("task dropped, queue shut down", "task", task.Name)
		return false
	}

	q.tasks <- task
	return true
}

// Shutdown stops accepting tasks and waits for in-flight work, up to the
// context deadline.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) worker() {
	defer q.wg.Done()

	for task := range q.tasks {
		q.run(task)
	}
}

func (q *Queue) run(task Task) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	started := time.Now()
	if err := task.Run(ctx); err != nil {
		q.log.Error("background task failed", "task", task.Name, "duration", time.Since(started).String(), "error", err)
		return
	}
	q.log.Info("background task finished", "task", task.Name, "duration", time.Since(started).String())
}
