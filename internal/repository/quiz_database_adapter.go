package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"quizbuddy/internal/domain"
	"quizbuddy/internal/repository/models"
	"quizbuddy/internal/util"

	"github.com/jmoiron/sqlx"
)

const defaultListLimit = 20

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// CreateQuizWithQuestions implements domain.QuizRepository. It writes the
// quiz row, its question rows and their answer rows through the executor
// in ctx, so a surrounding WithTransaction makes the whole write atomic.
func (a *QuizDatabaseAdapter) CreateQuizWithQuestions(ctx context.Context, quiz *domain.Quiz) error {
	executor := GetExecutor(ctx, a.db)
	now := time.Now()

	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	quiz.CreatedAt = now
	quiz.UpdatedAt = now

	quizQuery := `INSERT INTO quizzes (
		id, subject_id, title, success_percentage, description, duration,
		owner_ip, is_shared, is_original, language, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11, :12
	)`

	_, err := executor.ExecContext(ctx, quizQuery,
		quiz.ID,
		nullString(quiz.SubjectID),
		quiz.Title,
		quiz.SuccessPercentage,
		nullString(quiz.Description),
		quiz.Duration,
		quiz.OwnerIP,
		models.BoolToNumber(quiz.IsShared),
		models.BoolToNumber(quiz.IsOriginal),
		nullString(quiz.Language),
		quiz.CreatedAt,
		quiz.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quiz: %w", err)
	}

	questionQuery := `INSERT INTO questions (
		id, quiz_id, title, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5
	)`
	answerQuery := `INSERT INTO answers (
		id, question_id, title, is_correct, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6
	)`

	for _, question := range quiz.Questions {
		if question.ID == "" {
			question.ID = util.NewULID()
		}
		question.QuizID = quiz.ID
		question.CreatedAt = now
		question.UpdatedAt = now

		if _, err := executor.ExecContext(ctx, questionQuery,
			question.ID,
			question.QuizID,
			question.Title,
			question.CreatedAt,
			question.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert question: %w", err)
		}

		for _, answer := range question.Answers {
			if answer.ID == "" {
				answer.ID = util.NewULID()
			}
			answer.QuestionID = question.ID
			answer.CreatedAt = now
			answer.UpdatedAt = now

			if _, err := executor.ExecContext(ctx, answerQuery,
				answer.ID,
				answer.QuestionID,
				answer.Title,
				models.BoolToNumber(answer.IsCorrect),
				answer.CreatedAt,
				answer.UpdatedAt,
			); err != nil {
				return fmt.Errorf("failed to insert answer: %w", err)
			}
		}
	}

	return nil
}

// GetQuizByID implements domain.QuizRepository. Returns nil, nil when no
// quiz matches.
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	executor := GetExecutor(ctx, a.db)

	var modelQuiz models.Quiz
	quizQuery := `SELECT
		id "id",
		subject_id "subject_id",
		title "title",
		success_percentage "success_percentage",
		description "description",
		duration "duration",
		owner_ip "owner_ip",
		is_shared "is_shared",
		is_original "is_original",
		language "language",
		created_at "created_at",
		updated_at "updated_at"
	FROM quizzes
	WHERE id = :1`

	if err := executor.GetContext(ctx, &modelQuiz, quizQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}

	var modelQuestions []models.Question
	questionQuery := `SELECT
		id "id",
		quiz_id "quiz_id",
		title "title",
		created_at "created_at",
		updated_at "updated_at"
	FROM questions
	WHERE quiz_id = :1
	ORDER BY id`

	if err := executor.SelectContext(ctx, &modelQuestions, questionQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz %s: %w", id, err)
	}

	quiz := toDomainQuiz(&modelQuiz)
	answerQuery := `SELECT
		id "id",
		question_id "question_id",
		title "title",
		is_correct "is_correct",
		created_at "created_at",
		updated_at "updated_at"
	FROM answers
	WHERE question_id = :1
	ORDER BY id`

	for i := range modelQuestions {
		var modelAnswers []models.Answer
		if err := executor.SelectContext(ctx, &modelAnswers, answerQuery, modelQuestions[i].ID); err != nil {
			return nil, fmt.Errorf("failed to get answers for question %s: %w", modelQuestions[i].ID, err)
		}
		quiz.Questions = append(quiz.Questions, toDomainQuestion(&modelQuestions[i], modelAnswers))
	}

	return quiz, nil
}

// ListSharedQuizzes implements domain.QuizRepository. Pagination is
// keyset-based on the descending ULID primary key, so newest quizzes
// come first and pages stay stable while new quizzes arrive.
func (a *QuizDatabaseAdapter) ListSharedQuizzes(ctx context.Context, filter domain.QuizFilter) ([]*domain.QuizSummary, error) {
	executor := GetExecutor(ctx, a.db)

	limit := filter.Limit
	if limit < 1 {
		limit = defaultListLimit
	}

	conditions := []string{"q.is_shared = 1"}
	args := []interface{}{}
	bind := func(value interface{}) string {
		args = append(args, value)
		return fmt.Sprintf(":%d", len(args))
	}

	if filter.SubjectID != "" {
		conditions = append(conditions, "q.subject_id = "+bind(filter.SubjectID))
	}
	if filter.Language != "" {
		conditions = append(conditions, "q.language = "+bind(filter.Language))
	}
	if filter.SearchQuery != "" {
		pattern := "%" + strings.ToLower(filter.SearchQuery) + "%"
		conditions = append(conditions, "LOWER(q.title) LIKE "+bind(pattern))
	}
	if filter.AfterID != "" {
		conditions = append(conditions, "q.id < "+bind(filter.AfterID))
	}

	query := fmt.Sprintf(`SELECT
		q.id "id",
		q.subject_id "subject_id",
		q.title "title",
		q.success_percentage "success_percentage",
		q.description "description",
		q.duration "duration",
		q.owner_ip "owner_ip",
		q.is_shared "is_shared",
		q.is_original "is_original",
		q.language "language",
		q.created_at "created_at",
		q.updated_at "updated_at",
		s.title "subject_title",
		(SELECT COUNT(*) FROM questions qn WHERE qn.quiz_id = q.id) "num_questions"
	FROM quizzes q
	LEFT JOIN subjects s ON s.id = q.subject_id
	WHERE %s
	ORDER BY q.id DESC
	FETCH FIRST %s ROWS ONLY`, strings.Join(conditions, " AND "), bind(limit))

	var rows []models.QuizSummaryRow
	if err := executor.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list shared quizzes: %w", err)
	}

	summaries := make([]*domain.QuizSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, &domain.QuizSummary{
			Quiz:         toDomainQuiz(&rows[i].Quiz),
			SubjectTitle: rows[i].SubjectTitle.String,
			NumQuestions: rows[i].NumQuestions,
		})
	}
	return summaries, nil
}

// DeleteQuiz implements domain.QuizRepository. Child rows go first so
// the foreign keys stay satisfied.
func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id string) error {
	executor := GetExecutor(ctx, a.db)

	deleteAnswers := `DELETE FROM answers WHERE question_id IN (
		SELECT id FROM questions WHERE quiz_id = :1
	)`
	if _, err := executor.ExecContext(ctx, deleteAnswers, id); err != nil {
		return fmt.Errorf("failed to delete answers for quiz %s: %w", id, err)
	}

	if _, err := executor.ExecContext(ctx, `DELETE FROM questions WHERE quiz_id = :1`, id); err != nil {
		return fmt.Errorf("failed to delete questions for quiz %s: %w", id, err)
	}

	result, err := executor.ExecContext(ctx, `DELETE FROM quizzes WHERE id = :1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuizNotFoundError(id)
	}
	return nil
}

// SetShared implements domain.QuizRepository
func (a *QuizDatabaseAdapter) SetShared(ctx context.Context, id string, shared bool) error {
	executor := GetExecutor(ctx, a.db)

	query := `UPDATE quizzes SET is_shared = :1, updated_at = :2 WHERE id = :3`
	result, err := executor.ExecContext(ctx, query, models.BoolToNumber(shared), time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update quiz sharing for %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewQuizNotFoundError(id)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	return &domain.Quiz{
		ID:                m.ID,
		SubjectID:         m.SubjectID.String,
		Title:             m.Title,
		SuccessPercentage: m.SuccessPercentage,
		Description:       m.Description.String,
		Duration:          m.Duration,
		OwnerIP:           m.OwnerIP,
		IsShared:          models.NumberToBool(m.IsShared),
		IsOriginal:        models.NumberToBool(m.IsOriginal),
		Language:          m.Language.String,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toDomainQuestion(m *models.Question, answers []models.Answer) *domain.Question {
	question := &domain.Question{
		ID:        m.ID,
		QuizID:    m.QuizID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for i := range answers {
		question.Answers = append(question.Answers, &domain.Answer{
			ID:         answers[i].ID,
			QuestionID: answers[i].QuestionID,
			Title:      answers[i].Title,
			IsCorrect:  models.NumberToBool(answers[i].IsCorrect),
			CreatedAt:  answers[i].CreatedAt,
			UpdatedAt:  answers[i].UpdatedAt,
		})
	}
	return question
}
