package domain

import "context"

// QuizRepository defines the interface for quiz persistence
type QuizRepository interface {
	// CreateQuizWithQuestions persists a quiz together with its questions
	// and answers. Callers wrap it in a transaction so the write is atomic.
	CreateQuizWithQuestions(ctx context.Context, quiz *Quiz) error

	// GetQuizByID retrieves a quiz with its questions and answers.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)

	// ListSharedQuizzes returns shared quizzes matching the filter,
	// newest first.
	ListSharedQuizzes(ctx context.Context, filter QuizFilter) ([]*QuizSummary, error)

	// DeleteQuiz removes a quiz and its questions and answers.
	DeleteQuiz(ctx context.Context, id string) error

	// SetShared flips the quiz's shared flag.
	SetShared(ctx context.Context, id string, shared bool) error
}

// SubjectRepository defines the interface for subject persistence
type SubjectRepository interface {
	ListSubjects(ctx context.Context, searchQuery string) ([]*Subject, error)
	GetSubjectByID(ctx context.Context, id string) (*Subject, error)
	CreateSubject(ctx context.Context, subject *Subject) error
	RenameSubject(ctx context.Context, id string, title string) error
	DeleteSubject(ctx context.Context, id string) error
}

// TransactionManager runs a function within a database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
