package models

import (
	"database/sql"
	"time"
)

// Subject is the subjects table row.
type Subject struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Quiz is the quizzes table row. Oracle has no boolean type, so the
// shared and original flags are NUMBER(1) columns.
type Quiz struct {
	ID                string         `db:"id"`
	SubjectID         sql.NullString `db:"subject_id"`
	Title             string         `db:"title"`
	SuccessPercentage int            `db:"success_percentage"`
	Description       sql.NullString `db:"description"`
	Duration          int            `db:"duration"`
	OwnerIP           string         `db:"owner_ip"`
	IsShared          int            `db:"is_shared"`
	IsOriginal        int            `db:"is_original"`
	Language          sql.NullString `db:"language"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

// Question is the questions table row.
type Question struct {
	ID        string    `db:"id"`
	QuizID    string    `db:"quiz_id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Answer is the answers table row.
type Answer struct {
	ID         string    `db:"id"`
	QuestionID string    `db:"question_id"`
	Title      string    `db:"title"`
	IsCorrect  int       `db:"is_correct"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// QuizSummaryRow is the listing row shape joined with subject title and
// question count.
type QuizSummaryRow struct {
	Quiz
	SubjectTitle sql.NullString `db:"subject_title"`
	NumQuestions int            `db:"num_questions"`
}

// BoolToNumber converts a Go bool into Oracle's NUMBER(1) convention.
func BoolToNumber(b bool) int {
	if b {
		return 1
	}
	return 0
}

// NumberToBool converts Oracle's NUMBER(1) convention back into a bool.
func NumberToBool(n int) bool {
	return n != 0
}
