package main

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_Usage(t *testing.T) {
	assert.Equal(t, 2, run(context.Background(), nil, discardLogger()))
	assert.Equal(t, 2, run(context.Background(), []string{"up", "down"}, discardLogger()))
	assert.Equal(t, 2, run(context.Background(), []string{"-steps", "x", "down"}, discardLogger()))
}

func TestRun_RequiresPostgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	assert.Equal(t, 1, run(context.Background(), []string{"up"}, discardLogger()))
}

func TestRun_ClosesDatabaseWhenCommandFails(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing()
	mock.ExpectClose()

	original := openDB
	openDB = func(string) (*sql.DB, error) { return db, nil }
	t.Cleanup(func() { openDB = original })

	code := run(context.Background(), []string{"bogus"}, discardLogger())

	assert.Equal(t, 1, code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
