package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTransaction_Commits(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var sawTx bool
	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		_, sawTx = ctx.Value(TransactionContextKey).(*sqlx.Tx)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, sawTx, "transaction should be available through the context")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	db, mock := setupTestDB(t)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	fnErr := errors.New("write failed")
	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return fnErr
	})

	require.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor_FallsBackToDB(t *testing.T) {
	db, _ := setupTestDB(t)

	executor := GetExecutor(context.Background(), db)

	assert.Equal(t, DBTX(db), executor)
}

func TestGetExecutor_PrefersContextTransaction(t *testing.T) {
	db, mock := setupTestDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	tx, err := db.BeginTxx(context.Background(), nil)
	require.NoError(t, err)
	defer tx.Rollback()

	ctx := context.WithValue(context.Background(), TransactionContextKey, tx)

	executor := GetExecutor(ctx, db)

	assert.Equal(t, DBTX(tx), executor)
}
