package taskqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quizbuddy/internal/domain"

	"github.com/redis/go-redis/v9"
)

const taskKeyPrefix = "task:"

// RedisTaskStore keeps task state in a Redis hash per task, in the manner
// of a Celery result backend. Finished tasks expire after the configured
// TTL.
type RedisTaskStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTaskStore(client *redis.Client, ttl time.Duration) *RedisTaskStore {
	return &RedisTaskStore{client: client, ttl: ttl}
}

func taskKey(id string) string {
	return taskKeyPrefix + id
}

func (s *RedisTaskStore) MarkPending(ctx context.Context, id string) error {
	if err := s.client.HSet(ctx, taskKey(id), "state", string(StatePending)).Err(); err != nil {
		return fmt.Errorf("failed to mark task %s pending: %w", id, err)
	}
	// Pending entries expire too, so abandoned tasks do not accumulate.
	return s.client.Expire(ctx, taskKey(id), s.ttl).Err()
}

func (s *RedisTaskStore) MarkProgress(ctx context.Context, id string, event domain.ProgressEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal progress for task %s: %w", id, err)
	}
	return s.client.HSet(ctx, taskKey(id),
		"state", string(StateProgress),
		"progress", string(payload),
	).Err()
}

func (s *RedisTaskStore) MarkDone(ctx context.Context, id string, result *TaskResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result for task %s: %w", id, err)
	}
	if err := s.client.HSet(ctx, taskKey(id),
		"state", string(StateSuccess),
		"result", string(payload),
	).Err(); err != nil {
		return fmt.Errorf("failed to mark task %s done: %w", id, err)
	}
	return s.client.Expire(ctx, taskKey(id), s.ttl).Err()
}

func (s *RedisTaskStore) MarkFailed(ctx context.Context, id string, errorMessage string) error {
	if err := s.client.HSet(ctx, taskKey(id),
		"state", string(StateFailure),
		"error", errorMessage,
	).Err(); err != nil {
		return fmt.Errorf("failed to mark task %s failed: %w", id, err)
	}
	return s.client.Expire(ctx, taskKey(id), s.ttl).Err()
}

func (s *RedisTaskStore) Get(ctx context.Context, id string) (*TaskStatus, error) {
	fields, err := s.client.HGetAll(ctx, taskKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read task %s: %w", id, err)
	}
	if len(fields) == 0 {
		return nil, domain.NewNotFoundError("task not found: " + id)
	}

	state := State(fields["state"])

	var result *TaskResult
	if raw, ok := fields["result"]; ok && raw != "" {
		result = &TaskResult{}
		if err := json.Unmarshal([]byte(raw), result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result for task %s: %w", id, err)
		}
	}

	var progress *domain.ProgressEvent
	if raw, ok := fields["progress"]; ok && raw != "" {
		progress = &domain.ProgressEvent{}
		if err := json.Unmarshal([]byte(raw), progress); err != nil {
			return nil, fmt.Errorf("failed to unmarshal progress for task %s: %w", id, err)
		}
	}

	return statusFromEntry(state, result, fields["error"], progress), nil
}

var _ TaskStore = (*RedisTaskStore)(nil)
