package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"quizbuddy/internal/domain"
	"quizbuddy/internal/dto"

	"go.uber.org/zap"
)

// ListQuizzesParams narrows the shared-quiz listing.
type ListQuizzesParams struct {
	SearchQuery string
	SubjectID   string
	Language    string
	Cursor      string
	Limit       int
}

// QuizService defines the interface for quiz read and lifecycle operations
type QuizService interface {
	GetQuiz(ctx context.Context, id string, requesterIP string) (*dto.QuizResponse, error)
	ListSharedQuizzes(ctx context.Context, params ListQuizzesParams) (*dto.QuizListResponse, error)
	DeleteQuiz(ctx context.Context, id string, requesterIP string) error
	SetQuizShared(ctx context.Context, id string, requesterIP string, shared bool) error
}

// quizService implements QuizService
type quizService struct {
	repo   domain.QuizRepository
	logger *zap.Logger
}

// NewQuizService creates a new instance of quizService
func NewQuizService(repo domain.QuizRepository, logger *zap.Logger) QuizService {
	return &quizService{repo: repo, logger: logger}
}

// GetQuiz implements QuizService. Unshared quizzes are visible only to
// the requester who created them.
func (s *quizService) GetQuiz(ctx context.Context, id string, requesterIP string) (*dto.QuizResponse, error) {
	quiz, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}
	if !quiz.IsShared && quiz.OwnerIP != requesterIP {
		return nil, domain.NewForbiddenError("this quiz is not shared")
	}
	return toQuizResponse(quiz), nil
}

// ListSharedQuizzes implements QuizService. The cursor is an opaque
// base64 token produced by the previous page.
func (s *quizService) ListSharedQuizzes(ctx context.Context, params ListQuizzesParams) (*dto.QuizListResponse, error) {
	afterID, err := decodeCursor(params.Cursor)
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit < 1 {
		limit = 20
	}

	// Fetch one extra row to learn whether another page exists.
	summaries, err := s.repo.ListSharedQuizzes(ctx, domain.QuizFilter{
		SearchQuery: params.SearchQuery,
		SubjectID:   params.SubjectID,
		Language:    params.Language,
		AfterID:     afterID,
		Limit:       limit + 1,
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	hasMore := len(summaries) > limit
	if hasMore {
		summaries = summaries[:limit]
	}

	response := &dto.QuizListResponse{
		Quizzes: make([]dto.QuizSummaryResponse, 0, len(summaries)),
		HasMore: hasMore,
	}
	for _, summary := range summaries {
		response.Quizzes = append(response.Quizzes, dto.QuizSummaryResponse{
			ID:           summary.Quiz.ID,
			Title:        summary.Quiz.Title,
			SubjectID:    summary.Quiz.SubjectID,
			SubjectTitle: summary.SubjectTitle,
			Language:     summary.Quiz.Language,
			Duration:     summary.Quiz.Duration,
			NumQuestions: summary.NumQuestions,
			CreatedAt:    summary.Quiz.CreatedAt,
		})
	}
	if hasMore {
		response.NextCursor = encodeCursor(summaries[len(summaries)-1].Quiz.ID)
	}
	return response, nil
}

// DeleteQuiz implements QuizService. Only the requester who created the
// quiz may delete it.
func (s *quizService) DeleteQuiz(ctx context.Context, id string, requesterIP string) error {
	quiz, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return domain.NewQuizNotFoundError(id)
	}
	if quiz.OwnerIP != requesterIP {
		return domain.NewForbiddenError("only the quiz owner can delete it")
	}

	if err := s.repo.DeleteQuiz(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Quiz deleted", zap.String("quiz_id", id))
	return nil
}

// SetQuizShared implements QuizService. Only original quizzes can be
// shared; copies stay private to whoever holds them.
func (s *quizService) SetQuizShared(ctx context.Context, id string, requesterIP string, shared bool) error {
	quiz, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return domain.NewQuizNotFoundError(id)
	}
	if quiz.OwnerIP != requesterIP {
		return domain.NewForbiddenError("only the quiz owner can change sharing")
	}
	if shared && !quiz.IsOriginal {
		return domain.NewForbiddenError("only original quizzes can be shared")
	}

	if err := s.repo.SetShared(ctx, id, shared); err != nil {
		return err
	}
	s.logger.Info("Quiz sharing updated", zap.String("quiz_id", id), zap.Bool("shared", shared))
	return nil
}

type listCursor struct {
	LastID string `json:"last_id"`
}

func encodeCursor(lastID string) string {
	payload, _ := json.Marshal(listCursor{LastID: lastID})
	return base64.URLEncoding.EncodeToString(payload)
}

func decodeCursor(cursor string) (string, error) {
	if cursor == "" {
		return "", nil
	}
	payload, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return "", domain.NewInvalidInputError(fmt.Sprintf("invalid cursor: %s", cursor))
	}
	var c listCursor
	if err := json.Unmarshal(payload, &c); err != nil {
		return "", domain.NewInvalidInputError(fmt.Sprintf("invalid cursor: %s", cursor))
	}
	return c.LastID, nil
}

func toQuizResponse(quiz *domain.Quiz) *dto.QuizResponse {
	response := &dto.QuizResponse{
		ID:                quiz.ID,
		SubjectID:         quiz.SubjectID,
		Title:             quiz.Title,
		SuccessPercentage: quiz.SuccessPercentage,
		Description:       quiz.Description,
		Duration:          quiz.Duration,
		IsShared:          quiz.IsShared,
		IsOriginal:        quiz.IsOriginal,
		Language:          quiz.Language,
		Questions:         make([]dto.QuestionResponse, 0, len(quiz.Questions)),
		CreatedAt:         quiz.CreatedAt,
	}
	for _, question := range quiz.Questions {
		questionResponse := dto.QuestionResponse{
			ID:      question.ID,
			Title:   question.Title,
			Answers: make([]dto.AnswerResponse, 0, len(question.Answers)),
		}
		for _, answer := range question.Answers {
			questionResponse.Answers = append(questionResponse.Answers, dto.AnswerResponse{
				ID:        answer.ID,
				Title:     answer.Title,
				IsCorrect: answer.IsCorrect,
			})
		}
		response.Questions = append(response.Questions, questionResponse)
	}
	return response
}
