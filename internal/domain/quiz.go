package domain

import (
	"time"
)

// Subject groups quizzes under a common topic.
type Subject struct {
	ID        string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSubject creates a new Subject instance
func NewSubject(title string) *Subject {
	now := time.Now()
	return &Subject{
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the subject
func (s *Subject) Validate() error {
	if s.Title == "" {
		return NewInvalidInputError("title is required")
	}
	return nil
}

// Quiz is a generated multiple-choice quiz over one subject.
type Quiz struct {
	ID                string
	SubjectID         string
	Title             string
	SuccessPercentage int
	Description       string
	Duration          int
	OwnerIP           string
	IsShared          bool
	IsOriginal        bool
	Language          string
	Questions         []*Question
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate validates the quiz
func (q *Quiz) Validate() error {
	if q.Title == "" {
		return NewInvalidInputError("title is required")
	}
	if q.SubjectID == "" {
		return NewInvalidInputError("subject_id is required")
	}
	if q.SuccessPercentage < 0 || q.SuccessPercentage > 100 {
		return NewInvalidInputError("success_percentage must be between 0 and 100")
	}
	if q.Duration < 1 {
		return NewInvalidInputError("duration must be positive")
	}
	return nil
}

// Question is one multiple-choice question belonging to a quiz.
type Question struct {
	ID        string
	QuizID    string
	Title     string
	Answers   []*Answer
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Answer is one choice of a question. Exactly one answer per question
// is marked correct.
type Answer struct {
	ID         string
	QuestionID string
	Title      string
	IsCorrect  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// QuizFilter narrows the shared-quiz listing.
type QuizFilter struct {
	SearchQuery string
	SubjectID   string
	Language    string
	// AfterID is the exclusive lower bound for descending-id pagination.
	AfterID string
	Limit   int
}

// QuizSummary is a listing row: quiz header plus its question count.
type QuizSummary struct {
	Quiz         *Quiz
	SubjectTitle string
	NumQuestions int
}
