package service

import (
	"context"

	"quizbuddy/internal/domain"
	"quizbuddy/internal/dto"

	"go.uber.org/zap"
)

// SubjectService defines the interface for subject operations
type SubjectService interface {
	ListSubjects(ctx context.Context, searchQuery string) ([]dto.SubjectResponse, error)
	GetSubject(ctx context.Context, id string) (*dto.SubjectResponse, error)
	CreateSubject(ctx context.Context, title string) (*dto.SubjectResponse, error)
	RenameSubject(ctx context.Context, id string, title string) error
	DeleteSubject(ctx context.Context, id string) error
}

// subjectService implements SubjectService
type subjectService struct {
	repo   domain.SubjectRepository
	logger *zap.Logger
}

// NewSubjectService creates a new instance of subjectService
func NewSubjectService(repo domain.SubjectRepository, logger *zap.Logger) SubjectService {
	return &subjectService{repo: repo, logger: logger}
}

// ListSubjects implements SubjectService
func (s *subjectService) ListSubjects(ctx context.Context, searchQuery string) ([]dto.SubjectResponse, error) {
	subjects, err := s.repo.ListSubjects(ctx, searchQuery)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list subjects", err)
	}

	responses := make([]dto.SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		responses = append(responses, dto.SubjectResponse{ID: subject.ID, Title: subject.Title})
	}
	return responses, nil
}

// GetSubject implements SubjectService
func (s *subjectService) GetSubject(ctx context.Context, id string) (*dto.SubjectResponse, error) {
	subject, err := s.repo.GetSubjectByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get subject", err)
	}
	if subject == nil {
		return nil, domain.NewSubjectNotFoundError(id)
	}
	return &dto.SubjectResponse{ID: subject.ID, Title: subject.Title}, nil
}

// CreateSubject implements SubjectService
func (s *subjectService) CreateSubject(ctx context.Context, title string) (*dto.SubjectResponse, error) {
	subject := domain.NewSubject(title)
	if err := subject.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateSubject(ctx, subject); err != nil {
		return nil, domain.NewInternalError("Failed to create subject", err)
	}
	s.logger.Info("Subject created", zap.String("subject_id", subject.ID), zap.String("title", subject.Title))
	return &dto.SubjectResponse{ID: subject.ID, Title: subject.Title}, nil
}

// RenameSubject implements SubjectService
func (s *subjectService) RenameSubject(ctx context.Context, id string, title string) error {
	if title == "" {
		return domain.NewInvalidInputError("title is required")
	}
	return s.repo.RenameSubject(ctx, id, title)
}

// DeleteSubject implements SubjectService
func (s *subjectService) DeleteSubject(ctx context.Context, id string) error {
	if err := s.repo.DeleteSubject(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Subject deleted", zap.String("subject_id", id))
	return nil
}
