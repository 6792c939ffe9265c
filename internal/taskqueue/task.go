package taskqueue

import (
	"context"

	"quizbuddy/internal/domain"
)

// State mirrors the lifecycle of one unit of background work.
type State string

const (
	StatePending  State = "PENDING"
	StateProgress State = "PROGRESS"
	StateSuccess  State = "SUCCESS"
	StateFailure  State = "FAILURE"
)

// TaskDetails carries machine-readable context alongside a task result.
// ResponseCode follows HTTP conventions: 200 for a created quiz, 422 for
// a classified content-quality failure, 401 for an upstream auth failure,
// 500 for anything unexpected.
type TaskDetails struct {
	ResponseMessage string                  `json:"response_message"`
	ResponseCode    int                     `json:"response_code"`
	Status          domain.GenerationStatus `json:"status,omitempty"`
}

// TaskResult is the value a finished task exposes to pollers. QuizID is
// nil on every failure path.
type TaskResult struct {
	Message string      `json:"message"`
	QuizID  *string     `json:"quiz_id"`
	Details TaskDetails `json:"details"`
}

// TaskStatus is the poller-facing view of one task.
type TaskStatus struct {
	Ready      bool
	Successful bool
	Value      *TaskResult
	Progress   *domain.ProgressEvent
}

// Job is one unit of background work. A returned error marks the task as
// failed; a returned result marks it successful, even when the result is
// failure-shaped (classified content failures ride the success path, the
// value tells the caller what happened).
type Job func(ctx context.Context, reporter domain.ProgressReporter) (*TaskResult, error)
