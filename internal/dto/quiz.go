package dto

import (
	"time"

	"quizbuddy/internal/taskqueue"
)

// CreateQuizTaskResponse acknowledges an accepted creation job.
type CreateQuizTaskResponse struct {
	TaskID string `json:"task_id"`
}

// TaskStatusResponse is the poller-facing view of a background task.
type TaskStatusResponse struct {
	Ready      bool                  `json:"ready"`
	Successful bool                  `json:"successful"`
	Value      *taskqueue.TaskResult `json:"value,omitempty"`
	Progress   *ProgressResponse     `json:"progress,omitempty"`
}

// ProgressResponse reports segments processed so far.
type ProgressResponse struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// AnswerResponse is one choice of a question.
type AnswerResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionResponse is one question with its choices.
type QuestionResponse struct {
	ID      string           `json:"id"`
	Title   string           `json:"title"`
	Answers []AnswerResponse `json:"answers"`
}

// QuizResponse is a full quiz with questions and answers.
type QuizResponse struct {
	ID                string             `json:"id"`
	SubjectID         string             `json:"subject_id,omitempty"`
	Title             string             `json:"title"`
	SuccessPercentage int                `json:"success_percentage"`
	Description       string             `json:"description,omitempty"`
	Duration          int                `json:"duration"`
	IsShared          bool               `json:"is_shared"`
	IsOriginal        bool               `json:"is_original"`
	Language          string             `json:"language,omitempty"`
	Questions         []QuestionResponse `json:"questions"`
	CreatedAt         time.Time          `json:"created_at"`
}

// QuizSummaryResponse is one row of the shared-quiz listing.
type QuizSummaryResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	SubjectID    string    `json:"subject_id,omitempty"`
	SubjectTitle string    `json:"subject_title,omitempty"`
	Language     string    `json:"language,omitempty"`
	Duration     int       `json:"duration"`
	NumQuestions int       `json:"num_questions"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuizListResponse is a cursor-paginated page of shared quizzes.
type QuizListResponse struct {
	Quizzes    []QuizSummaryResponse `json:"quizzes"`
	HasMore    bool                  `json:"has_more"`
	NextCursor string                `json:"next_cursor,omitempty"`
}

// SubjectResponse is one subject.
type SubjectResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// CreateSubjectRequest creates a new subject.
type CreateSubjectRequest struct {
	Title string `json:"title"`
}

// RenameSubjectRequest renames an existing subject.
type RenameSubjectRequest struct {
	Title string `json:"title"`
}

// ErrorResponse is the uniform error body produced by the error handler.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
