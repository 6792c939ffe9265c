package taskqueue

import (
	"context"
	"sync"

	"quizbuddy/internal/domain"
)

// TaskStore records task lifecycle transitions for pollers. Progress
// writes are fire-and-forget from the worker's point of view; store
// errors there are logged, never propagated into the run.
type TaskStore interface {
	MarkPending(ctx context.Context, id string) error
	MarkProgress(ctx context.Context, id string, event domain.ProgressEvent) error
	MarkDone(ctx context.Context, id string, result *TaskResult) error
	MarkFailed(ctx context.Context, id string, errorMessage string) error
	Get(ctx context.Context, id string) (*TaskStatus, error)
}

type memoryEntry struct {
	state        State
	result       *TaskResult
	errorMessage string
	progress     *domain.ProgressEvent
}

// MemoryTaskStore is an in-process TaskStore used in tests and
// single-node development setups.
type MemoryTaskStore struct {
	mu    sync.RWMutex
	tasks map[string]*memoryEntry
}

func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: make(map[string]*memoryEntry)}
}

func (s *MemoryTaskStore) MarkPending(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[id] = &memoryEntry{state: StatePending}
	return nil
}

func (s *MemoryTaskStore) MarkProgress(ctx context.Context, id string, event domain.ProgressEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tasks[id]
	if !ok {
		return domain.NewNotFoundError("task not found: " + id)
	}
	entry.state = StateProgress
	entry.progress = &event
	return nil
}

func (s *MemoryTaskStore) MarkDone(ctx context.Context, id string, result *TaskResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tasks[id]
	if !ok {
		return domain.NewNotFoundError("task not found: " + id)
	}
	entry.state = StateSuccess
	entry.result = result
	return nil
}

func (s *MemoryTaskStore) MarkFailed(ctx context.Context, id string, errorMessage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tasks[id]
	if !ok {
		return domain.NewNotFoundError("task not found: " + id)
	}
	entry.state = StateFailure
	entry.errorMessage = errorMessage
	return nil
}

func (s *MemoryTaskStore) Get(ctx context.Context, id string) (*TaskStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.tasks[id]
	if !ok {
		return nil, domain.NewNotFoundError("task not found: " + id)
	}
	return statusFromEntry(entry.state, entry.result, entry.errorMessage, entry.progress), nil
}

// statusFromEntry maps stored state to the poller-facing shape. Failed
// tasks still expose a failure-shaped value so clients have a uniform
// structure to inspect.
func statusFromEntry(state State, result *TaskResult, errorMessage string, progress *domain.ProgressEvent) *TaskStatus {
	status := &TaskStatus{
		Ready:      state == StateSuccess || state == StateFailure,
		Successful: state == StateSuccess,
		Value:      result,
	}
	if state == StateFailure && result == nil {
		status.Value = &TaskResult{
			Message: "Error during quiz creation",
			Details: TaskDetails{
				ResponseMessage: errorMessage,
				ResponseCode:    500,
			},
		}
	}
	if state == StateProgress {
		status.Progress = progress
	}
	return status
}

var _ TaskStore = (*MemoryTaskStore)(nil)
