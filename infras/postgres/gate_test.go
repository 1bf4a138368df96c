package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/config"
)

func TestWaitForDatabase_SucceedsAfterRetries(t *testing.T) {
	conn, mock := newMockConnection(t, testConfig())

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()

	require.NoError(t, conn.WaitForDatabase(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_ExhaustsRetries(t *testing.T) {
	cfg := testConfig()
	cfg.DB.MaxRetry = 2

	conn, mock := newMockConnection(t, cfg)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	assert.Error(t, conn.WaitForDatabase(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_StopsOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.DB.RetryWaitTime = 60

	conn, mock := newMockConnection(t, cfg)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := conn.WaitForDatabase(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEnsureSchema(t *testing.T) {
	conn, mock := newMockConnection(t, testConfig())

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS tasks").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, conn.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Error(t *testing.T) {
	conn, mock := newMockConnection(t, testConfig())

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS tasks").
		WillReturnError(&pq.Error{Code: "42501", Message: "permission denied for schema public"})

	assert.Error(t, conn.EnsureSchema(context.Background()))
}

func TestInitialize_WaitsThenCreatesSchema(t *testing.T) {
	conn, mock := newMockConnection(t, testConfig())

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS tasks").WillReturnResult(sqlmock.NewResult(0, 0))

	conn.Initialize(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitialize_SkipsSchemaWhenUnreachable(t *testing.T) {
	cfg := testConfig()
	cfg.DB.MaxRetry = 1

	conn, mock := newMockConnection(t, cfg)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	conn.Initialize(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitialize_SkippedInTestMode(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Env = config.EnvTesting

	conn, mock := newMockConnection(t, cfg)

	conn.Initialize(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}
