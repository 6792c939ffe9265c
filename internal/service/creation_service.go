package service

import (
	"context"
	"strings"

	"quizbuddy/internal/config"
	"quizbuddy/internal/domain"
	"quizbuddy/internal/quizgen"
	"quizbuddy/internal/taskqueue"
	"quizbuddy/internal/util"

	"go.uber.org/zap"
)

// upstreamAuthMarker is the substring OpenAI puts in its invalid-key
// error. Matched verbatim so the failure can be reported as a 401
// instead of a generic task failure.
const upstreamAuthMarker = "Incorrect API key provided"

const creationFailedMessage = "Error during quiz creation"

// GeneratorFactory builds a question generator bound to one requester's
// API key.
type GeneratorFactory func(apiKey string) (domain.QuestionGenerator, error)

// CreateQuizParams is everything one creation job needs. FilePaths are
// the already-saved upload paths; the job owns them and removes them on
// every exit path.
type CreateQuizParams struct {
	APIKey            string
	SubjectID         string
	Title             string
	SuccessPercentage int
	Description       string
	Duration          int
	NumQuestions      int
	OwnerIP           string
	FilePaths         []string
}

// QuizCreationService accepts quiz-creation jobs and runs them in the
// background.
type QuizCreationService interface {
	// SubmitCreation enqueues a creation job and returns its task id.
	SubmitCreation(params CreateQuizParams) (string, error)
}

type quizCreationService struct {
	runtime          *taskqueue.Runtime
	quizRepo         domain.QuizRepository
	txManager        domain.TransactionManager
	loader           domain.DocumentLoader
	generatorFactory GeneratorFactory
	cfg              *config.Config
	logger           *zap.Logger
}

// NewQuizCreationService creates a new instance of quizCreationService
func NewQuizCreationService(
	runtime *taskqueue.Runtime,
	quizRepo domain.QuizRepository,
	txManager domain.TransactionManager,
	loader domain.DocumentLoader,
	generatorFactory GeneratorFactory,
	cfg *config.Config,
	logger *zap.Logger,
) QuizCreationService {
	return &quizCreationService{
		runtime:          runtime,
		quizRepo:         quizRepo,
		txManager:        txManager,
		loader:           loader,
		generatorFactory: generatorFactory,
		cfg:              cfg,
		logger:           logger,
	}
}

// SubmitCreation implements QuizCreationService
func (s *quizCreationService) SubmitCreation(params CreateQuizParams) (string, error) {
	taskID, err := s.runtime.Submit(func(ctx context.Context, reporter domain.ProgressReporter) (*taskqueue.TaskResult, error) {
		return s.run(ctx, params, reporter)
	})
	if err != nil {
		// The job never ran, so the uploads are still this caller's to clean.
		util.RemoveFiles(params.FilePaths)
		return "", err
	}
	return taskID, nil
}

// run is the job body. The uploads are removed on every exit path:
// success, classified failure, auth failure and unexpected error alike.
func (s *quizCreationService) run(ctx context.Context, params CreateQuizParams, reporter domain.ProgressReporter) (*taskqueue.TaskResult, error) {
	defer util.RemoveFiles(params.FilePaths)

	if params.NumQuestions < 1 {
		return nil, domain.NewInvalidInputError("the number of questions must be an integer greater than 0")
	}

	var pages []string
	for _, path := range params.FilePaths {
		filePages, err := s.loader.LoadPages(path)
		if err != nil {
			return nil, err
		}
		pages = append(pages, filePages...)
	}

	generator, err := s.generatorFactory(params.APIKey)
	if err != nil {
		return nil, err
	}

	pipeline := quizgen.NewPipeline(generator, s.cfg.Generation.MaxSegmentChars, s.logger)
	outcome, err := pipeline.Run(ctx, pages, params.NumQuestions, reporter)
	if err != nil {
		if strings.Contains(err.Error(), upstreamAuthMarker) {
			s.logger.Warn("Quiz creation rejected by upstream: invalid API key")
			return &taskqueue.TaskResult{
				Message: creationFailedMessage,
				Details: taskqueue.TaskDetails{
					ResponseMessage: upstreamAuthMarker,
					ResponseCode:    401,
				},
			}, nil
		}
		return nil, err
	}

	if len(outcome.Questions) == 0 {
		s.logger.Info("Quiz creation yielded no questions",
			zap.String("status", string(outcome.Status)),
			zap.String("message", outcome.Message),
		)
		return &taskqueue.TaskResult{
			Message: creationFailedMessage,
			Details: taskqueue.TaskDetails{
				ResponseMessage: outcome.Message,
				ResponseCode:    422,
				Status:          outcome.Status,
			},
		}, nil
	}

	quiz := buildQuiz(params, outcome)
	if err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.quizRepo.CreateQuizWithQuestions(txCtx, quiz)
	}); err != nil {
		return nil, err
	}

	s.logger.Info("Quiz created",
		zap.String("quiz_id", quiz.ID),
		zap.Int("questions", len(quiz.Questions)),
		zap.String("status", string(outcome.Status)),
	)

	return &taskqueue.TaskResult{
		Message: "Quiz created successfully.",
		QuizID:  &quiz.ID,
		Details: taskqueue.TaskDetails{
			ResponseMessage: outcome.Message,
			ResponseCode:    200,
			Status:          outcome.Status,
		},
	}, nil
}

// buildQuiz assembles the persisted quiz from the request parameters and
// the surviving candidates. The detected language is stored as its ISO
// code; an unknown language is stored empty.
func buildQuiz(params CreateQuizParams, outcome *domain.PipelineOutcome) *domain.Quiz {
	language := quizgen.CodeForLanguage(outcome.Language)
	if language == quizgen.UnknownLanguage {
		language = ""
	}

	quiz := &domain.Quiz{
		SubjectID:         params.SubjectID,
		Title:             params.Title,
		SuccessPercentage: params.SuccessPercentage,
		Description:       params.Description,
		Duration:          params.Duration,
		OwnerIP:           params.OwnerIP,
		IsShared:          false,
		IsOriginal:        true,
		Language:          language,
	}

	for _, candidate := range outcome.Questions {
		question := &domain.Question{Title: candidate.Title}
		for _, answer := range candidate.Answers {
			question.Answers = append(question.Answers, &domain.Answer{
				Title:     answer.Title,
				IsCorrect: answer.IsCorrect,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}
	return quiz
}
