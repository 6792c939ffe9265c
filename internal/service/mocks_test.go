package service

import (
	"context"

	"quizbuddy/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockQuizRepository is a mock implementation of domain.QuizRepository
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) CreateQuizWithQuestions(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepository) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) ListSharedQuizzes(ctx context.Context, filter domain.QuizFilter) ([]*domain.QuizSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.QuizSummary), args.Error(1)
}

func (m *MockQuizRepository) DeleteQuiz(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuizRepository) SetShared(ctx context.Context, id string, shared bool) error {
	args := m.Called(ctx, id, shared)
	return args.Error(0)
}

// MockSubjectRepository is a mock implementation of domain.SubjectRepository
type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) ListSubjects(ctx context.Context, searchQuery string) ([]*domain.Subject, error) {
	args := m.Called(ctx, searchQuery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Subject), args.Error(1)
}

func (m *MockSubjectRepository) GetSubjectByID(ctx context.Context, id string) (*domain.Subject, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subject), args.Error(1)
}

func (m *MockSubjectRepository) CreateSubject(ctx context.Context, subject *domain.Subject) error {
	args := m.Called(ctx, subject)
	return args.Error(0)
}

func (m *MockSubjectRepository) RenameSubject(ctx context.Context, id string, title string) error {
	args := m.Called(ctx, id, title)
	return args.Error(0)
}

func (m *MockSubjectRepository) DeleteSubject(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockDocumentLoader is a mock implementation of domain.DocumentLoader
type MockDocumentLoader struct {
	mock.Mock
}

func (m *MockDocumentLoader) LoadPages(path string) ([]string, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockGenerator is a mock implementation of domain.QuestionGenerator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateQuestion(ctx context.Context, content string, language string) (*domain.CandidateQuestion, error) {
	args := m.Called(ctx, content, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateQuestion), args.Error(1)
}

func (m *MockGenerator) DetectLanguage(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

// passthroughTxManager runs the function without a real transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
