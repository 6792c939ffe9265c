package taskqueue

import (
	"context"
	"fmt"

	"quizbuddy/internal/domain"
	"quizbuddy/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type queuedTask struct {
	id  string
	job Job
}

// Runtime schedules background jobs across a fixed worker pool. Each job
// is one independent unit of work; jobs share nothing but the TaskStore.
// There is no cancellation: a submitted job runs to completion, classified
// failure or unexpected failure.
type Runtime struct {
	store   TaskStore
	queue   chan queuedTask
	workers int
	logger  *zap.Logger
	group   *errgroup.Group
}

// NewRuntime creates a Runtime with the given worker count and queue
// capacity.
func NewRuntime(store TaskStore, workers, queueSize int, logger *zap.Logger) *Runtime {
	if workers < 1 {
		workers = 1
	}
	return &Runtime{
		store:   store,
		queue:   make(chan queuedTask, queueSize),
		workers: workers,
		logger:  logger,
	}
}

// Start launches the worker pool. ctx bounds the lifetime of idle workers;
// a job already running is not interrupted by cancellation.
func (r *Runtime) Start(ctx context.Context) {
	r.group = new(errgroup.Group)
	for i := 0; i < r.workers; i++ {
		worker := i
		r.group.Go(func() error {
			r.runWorker(ctx, worker)
			return nil
		})
	}
	r.logger.Info("Task runtime started", zap.Int("workers", r.workers))
}

// Submit enqueues a job and returns its opaque task identifier
// immediately; the work happens asynchronously.
func (r *Runtime) Submit(job Job) (string, error) {
	id := util.NewULID()
	if err := r.store.MarkPending(context.Background(), id); err != nil {
		return "", fmt.Errorf("failed to record pending task: %w", err)
	}

	select {
	case r.queue <- queuedTask{id: id, job: job}:
		return id, nil
	default:
		if err := r.store.MarkFailed(context.Background(), id, "task queue is full"); err != nil {
			r.logger.Error("Failed to record rejected task", zap.String("task_id", id), zap.Error(err))
		}
		return "", domain.NewInternalError("task queue is full", nil)
	}
}

// Shutdown stops accepting jobs and waits for in-flight ones to finish.
func (r *Runtime) Shutdown() error {
	close(r.queue)
	if r.group != nil {
		return r.group.Wait()
	}
	return nil
}

func (r *Runtime) runWorker(ctx context.Context, worker int) {
	for {
		select {
		case task, ok := <-r.queue:
			if !ok {
				return
			}
			r.execute(ctx, task, worker)
		case <-ctx.Done():
			return
		}
	}
}

func (r *Runtime) execute(ctx context.Context, task queuedTask, worker int) {
	log := r.logger.With(zap.String("task_id", task.id), zap.Int("worker", worker))
	log.Info("Task started")

	defer func() {
		if p := recover(); p != nil {
			log.Error("Task panicked", zap.Any("panic", p))
			if err := r.store.MarkFailed(context.Background(), task.id, fmt.Sprintf("panic: %v", p)); err != nil {
				log.Error("Failed to record panicked task", zap.Error(err))
			}
		}
	}()

	reporter := &storeReporter{store: r.store, taskID: task.id, logger: log}
	result, err := task.job(ctx, reporter)
	if err != nil {
		log.Error("Task failed", zap.Error(err))
		if storeErr := r.store.MarkFailed(context.Background(), task.id, err.Error()); storeErr != nil {
			log.Error("Failed to record failed task", zap.Error(storeErr))
		}
		return
	}

	if storeErr := r.store.MarkDone(context.Background(), task.id, result); storeErr != nil {
		log.Error("Failed to record finished task", zap.Error(storeErr))
		return
	}
	log.Info("Task finished")
}

// storeReporter pushes progress events into the task store. Emission is
// fire-and-forget: a failed write never disturbs the run.
type storeReporter struct {
	store  TaskStore
	taskID string
	logger *zap.Logger
}

func (p *storeReporter) Report(current, total int) {
	event := domain.ProgressEvent{Current: current, Total: total}
	if err := p.store.MarkProgress(context.Background(), p.taskID, event); err != nil {
		p.logger.Debug("Failed to record progress", zap.Error(err))
	}
}

var _ domain.ProgressReporter = (*storeReporter)(nil)
