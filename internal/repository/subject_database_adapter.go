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

// SubjectDatabaseAdapter implements domain.SubjectRepository using sqlx.DB
type SubjectDatabaseAdapter struct {
	db *sqlx.DB
}

// NewSubjectDatabaseAdapter creates a new instance of SubjectDatabaseAdapter
func NewSubjectDatabaseAdapter(db *sqlx.DB) domain.SubjectRepository {
	return &SubjectDatabaseAdapter{db: db}
}

// ListSubjects implements domain.SubjectRepository. An empty searchQuery
// returns all subjects in alphabetical order.
func (a *SubjectDatabaseAdapter) ListSubjects(ctx context.Context, searchQuery string) ([]*domain.Subject, error) {
	executor := GetExecutor(ctx, a.db)

	query := `SELECT
		id "id",
		title "title",
		created_at "created_at",
		updated_at "updated_at"
	FROM subjects`
	args := []interface{}{}

	if searchQuery != "" {
		query += ` WHERE LOWER(title) LIKE :1`
		args = append(args, "%"+strings.ToLower(searchQuery)+"%")
	}
	query += ` ORDER BY title`

	var modelSubjects []models.Subject
	if err := executor.SelectContext(ctx, &modelSubjects, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	subjects := make([]*domain.Subject, 0, len(modelSubjects))
	for i := range modelSubjects {
		subjects = append(subjects, toDomainSubject(&modelSubjects[i]))
	}
	return subjects, nil
}

// GetSubjectByID implements domain.SubjectRepository. Returns nil, nil
// when no subject matches.
func (a *SubjectDatabaseAdapter) GetSubjectByID(ctx context.Context, id string) (*domain.Subject, error) {
	executor := GetExecutor(ctx, a.db)

	var modelSubject models.Subject
	query := `SELECT
		id "id",
		title "title",
		created_at "created_at",
		updated_at "updated_at"
	FROM subjects
	WHERE id = :1`

	if err := executor.GetContext(ctx, &modelSubject, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subject by ID %s: %w", id, err)
	}
	return toDomainSubject(&modelSubject), nil
}

// CreateSubject implements domain.SubjectRepository
func (a *SubjectDatabaseAdapter) CreateSubject(ctx context.Context, subject *domain.Subject) error {
	executor := GetExecutor(ctx, a.db)
	now := time.Now()

	if subject.ID == "" {
		subject.ID = util.NewULID()
	}
	subject.CreatedAt = now
	subject.UpdatedAt = now

	query := `INSERT INTO subjects (id, title, created_at, updated_at) VALUES (:1, :2, :3, :4)`
	if _, err := executor.ExecContext(ctx, query, subject.ID, subject.Title, subject.CreatedAt, subject.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create subject: %w", err)
	}
	return nil
}

// RenameSubject implements domain.SubjectRepository
func (a *SubjectDatabaseAdapter) RenameSubject(ctx context.Context, id string, title string) error {
	executor := GetExecutor(ctx, a.db)

	query := `UPDATE subjects SET title = :1, updated_at = :2 WHERE id = :3`
	result, err := executor.ExecContext(ctx, query, title, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to rename subject %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewSubjectNotFoundError(id)
	}
	return nil
}

// DeleteSubject implements domain.SubjectRepository. Quizzes keep
// existing with a detached subject; only the grouping disappears.
func (a *SubjectDatabaseAdapter) DeleteSubject(ctx context.Context, id string) error {
	executor := GetExecutor(ctx, a.db)

	if _, err := executor.ExecContext(ctx, `UPDATE quizzes SET subject_id = NULL WHERE subject_id = :1`, id); err != nil {
		return fmt.Errorf("failed to detach quizzes from subject %s: %w", id, err)
	}

	result, err := executor.ExecContext(ctx, `DELETE FROM subjects WHERE id = :1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subject %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewSubjectNotFoundError(id)
	}
	return nil
}

func toDomainSubject(m *models.Subject) *domain.Subject {
	return &domain.Subject{
		ID:        m.ID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
