package handler

import (
	"strings"

	"quizbuddy/internal/dto"
	"quizbuddy/internal/taskqueue"

	"github.com/gofiber/fiber/v2"
)

// upstreamAuthMarker mirrors the substring OpenAI uses for invalid keys.
// A finished task whose result carries it is reported as an auth failure
// rather than a successful task with a failed payload.
const upstreamAuthMarker = "Incorrect API key provided"

// TaskHandler handles background task polling requests
type TaskHandler struct {
	store taskqueue.TaskStore
}

// NewTaskHandler creates a new TaskHandler instance
func NewTaskHandler(store taskqueue.TaskStore) *TaskHandler {
	return &TaskHandler{store: store}
}

// GetTaskResult handles GET /api/tasks/result/:id
func (h *TaskHandler) GetTaskResult(c *fiber.Ctx) error {
	status, err := h.store.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	response := dto.TaskStatusResponse{
		Ready:      status.Ready,
		Successful: status.Successful,
		Value:      status.Value,
	}
	if status.Progress != nil {
		response.Progress = &dto.ProgressResponse{
			Current: status.Progress.Current,
			Total:   status.Progress.Total,
		}
	}

	if response.Ready && response.Value != nil &&
		strings.Contains(response.Value.Details.ResponseMessage, upstreamAuthMarker) {
		response.Successful = false
		response.Value = &taskqueue.TaskResult{
			Message: response.Value.Message,
			Details: taskqueue.TaskDetails{
				ResponseMessage: upstreamAuthMarker,
				ResponseCode:    401,
			},
		}
	}

	return c.JSON(response)
}
