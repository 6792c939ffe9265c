package repository

import (
	"context"
	"testing"
	"time"

	"quizbuddy/internal/domain"
	"quizbuddy/internal/util"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subjectColumns() []string {
	return []string{"id", "title", "created_at", "updated_at"}
}

func TestListSubjects(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubjectDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows(subjectColumns()).
		AddRow(util.NewULID(), "Databases", now, now).
		AddRow(util.NewULID(), "Networking", now, now)
	mock.ExpectQuery(`FROM subjects`).WillReturnRows(rows)

	subjects, err := repo.ListSubjects(context.Background(), "")

	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Databases", subjects[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSubjects_WithSearch(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubjectDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows(subjectColumns()).
		AddRow(util.NewULID(), "Networking", now, now)
	mock.ExpectQuery(`FROM subjects`).WithArgs("%net%").WillReturnRows(rows)

	subjects, err := repo.ListSubjects(context.Background(), "Net")

	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "Networking", subjects[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSubjectByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubjectDatabaseAdapter(db)

	mock.ExpectQuery(`FROM subjects`).WithArgs("missing").WillReturnRows(sqlmock.NewRows(subjectColumns()))

	subject, err := repo.GetSubjectByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, subject)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSubject(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubjectDatabaseAdapter(db)

	mock.ExpectExec(`INSERT INTO subjects`).WillReturnResult(sqlmock.NewResult(0, 1))

	subject := domain.NewSubject("Operating Systems")
	err := repo.CreateSubject(context.Background(), subject)

	require.NoError(t, err)
	assert.NotEmpty(t, subject.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenameSubject_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubjectDatabaseAdapter(db)

	mock.ExpectExec(`UPDATE subjects SET title`).
		WithArgs("New Title", sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RenameSubject(context.Background(), "missing", "New Title")

	require.Error(t, err)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeSubjectNotFound, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSubject_DetachesQuizzes(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSubjectDatabaseAdapter(db)

	subjectID := util.NewULID()
	mock.ExpectExec(`UPDATE quizzes SET subject_id = NULL`).WithArgs(subjectID).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM subjects`).WithArgs(subjectID).WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteSubject(context.Background(), subjectID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
