package tasks

import (
	"context"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Task is a unit of deferred work. It receives the queue's base context,
// which is cancelled on shutdown.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Queue runs tasks one at a time on a background worker. Enqueue never
// blocks the caller beyond channel capacity; task failures are logged and
// dropped.
type Queue struct {
	ch     chan Task
	log    *zap.Logger
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

func New(lc fx.Lifecycle, log *zap.Logger) *Queue {
	ctx, cancel := context.WithCancel(context.Background())
	q := &Queue{
		ch:     make(chan Task, 256),
		log:    log.Named("tasks"),
		ctx:    ctx,
		cancel: cancel,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			q.wg.Add(1)
			go q.worker()
			return nil
		},
		OnStop: func(context.Context) error {
			q.Close()
			return nil
		},
	})
	return q
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for task := range q.ch {
		if err := task.Run(q.ctx); err != nil {
			q.log.Error("deferred task failed",
				zap.String("task", task.Name), zap.Error(err))
		}
	}
}

// Enqueue schedules a task. After Close it is a logged no-op.
func (q *Queue) Enqueue(task Task) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.log.Warn("task dropped, queue closed", zap.String("task", task.Name))
		return
	}
	q.ch <- task
}

// Close drains pending tasks and stops the worker.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	q.wg.Wait()
	q.cancel()
}

var Module = fx.Module("tasks", fx.Provide(New))
