package handler_test

import (
	"context"

	"quizbuddy/internal/dto"
	"quizbuddy/internal/service"
)

// --- Manual Mocks ---

// MockQuizService
type MockQuizService struct {
	GetQuizFunc           func(ctx context.Context, id string, requesterIP string) (*dto.QuizResponse, error)
	ListSharedQuizzesFunc func(ctx context.Context, params service.ListQuizzesParams) (*dto.QuizListResponse, error)
	DeleteQuizFunc        func(ctx context.Context, id string, requesterIP string) error
	SetQuizSharedFunc     func(ctx context.Context, id string, requesterIP string, shared bool) error
}

func (m *MockQuizService) GetQuiz(ctx context.Context, id string, requesterIP string) (*dto.QuizResponse, error) {
	if m.GetQuizFunc != nil {
		return m.GetQuizFunc(ctx, id, requesterIP)
	}
	panic("MockQuizService.GetQuizFunc not implemented")
}

func (m *MockQuizService) ListSharedQuizzes(ctx context.Context, params service.ListQuizzesParams) (*dto.QuizListResponse, error) {
	if m.ListSharedQuizzesFunc != nil {
		return m.ListSharedQuizzesFunc(ctx, params)
	}
	panic("MockQuizService.ListSharedQuizzesFunc not implemented")
}

func (m *MockQuizService) DeleteQuiz(ctx context.Context, id string, requesterIP string) error {
	if m.DeleteQuizFunc != nil {
		return m.DeleteQuizFunc(ctx, id, requesterIP)
	}
	panic("MockQuizService.DeleteQuizFunc not implemented")
}

func (m *MockQuizService) SetQuizShared(ctx context.Context, id string, requesterIP string, shared bool) error {
	if m.SetQuizSharedFunc != nil {
		return m.SetQuizSharedFunc(ctx, id, requesterIP, shared)
	}
	panic("MockQuizService.SetQuizSharedFunc not implemented")
}

// MockCreationService
type MockCreationService struct {
	SubmitCreationFunc func(params service.CreateQuizParams) (string, error)
}

func (m *MockCreationService) SubmitCreation(params service.CreateQuizParams) (string, error) {
	if m.SubmitCreationFunc != nil {
		return m.SubmitCreationFunc(params)
	}
	panic("MockCreationService.SubmitCreationFunc not implemented")
}

// MockSubjectService
type MockSubjectService struct {
	ListSubjectsFunc  func(ctx context.Context, searchQuery string) ([]dto.SubjectResponse, error)
	GetSubjectFunc    func(ctx context.Context, id string) (*dto.SubjectResponse, error)
	CreateSubjectFunc func(ctx context.Context, title string) (*dto.SubjectResponse, error)
	RenameSubjectFunc func(ctx context.Context, id string, title string) error
	DeleteSubjectFunc func(ctx context.Context, id string) error
}

func (m *MockSubjectService) ListSubjects(ctx context.Context, searchQuery string) ([]dto.SubjectResponse, error) {
	if m.ListSubjectsFunc != nil {
		return m.ListSubjectsFunc(ctx, searchQuery)
	}
	panic("MockSubjectService.ListSubjectsFunc not implemented")
}

func (m *MockSubjectService) GetSubject(ctx context.Context, id string) (*dto.SubjectResponse, error) {
	if m.GetSubjectFunc != nil {
		return m.GetSubjectFunc(ctx, id)
	}
	panic("MockSubjectService.GetSubjectFunc not implemented")
}

func (m *MockSubjectService) CreateSubject(ctx context.Context, title string) (*dto.SubjectResponse, error) {
	if m.CreateSubjectFunc != nil {
		return m.CreateSubjectFunc(ctx, title)
	}
	panic("MockSubjectService.CreateSubjectFunc not implemented")
}

func (m *MockSubjectService) RenameSubject(ctx context.Context, id string, title string) error {
	if m.RenameSubjectFunc != nil {
		return m.RenameSubjectFunc(ctx, id, title)
	}
	panic("MockSubjectService.RenameSubjectFunc not implemented")
}

func (m *MockSubjectService) DeleteSubject(ctx context.Context, id string) error {
	if m.DeleteSubjectFunc != nil {
		return m.DeleteSubjectFunc(ctx, id)
	}
	panic("MockSubjectService.DeleteSubjectFunc not implemented")
}
