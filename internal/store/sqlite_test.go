package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-vault/internal/logger"
)

func newMockSQLiteStore(t *testing.T) (*SQLiteStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteStoreFromDB(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

// ── sqlmock ──

func TestSQLiteStore_Get(t *testing.T) {
	q := regexp.QuoteMeta("SELECT value FROM vault_items WHERE key = ?")

	t.Run("found", func(t *testing.T) {
		s, mock := newMockSQLiteStore(t)
		mock.ExpectQuery(q).WithArgs(KeyAssets).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("blob"))

		v, err := s.Get(context.Background(), KeyAssets)
		require.NoError(t, err)
		assert.Equal(t, "blob", v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		s, mock := newMockSQLiteStore(t)
		mock.ExpectQuery(q).WithArgs(KeyAssets).WillReturnError(sql.ErrNoRows)

		_, err := s.Get(context.Background(), KeyAssets)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("driver error", func(t *testing.T) {
		s, mock := newMockSQLiteStore(t)
		mock.ExpectQuery(q).WithArgs(KeyAssets).WillReturnError(errors.New("disk I/O error"))

		_, err := s.Get(context.Background(), KeyAssets)
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLiteStore_Set(t *testing.T) {
	q := regexp.QuoteMeta("INSERT INTO vault_items (key,value) VALUES (?,?) ON CONFLICT(key)")

	t.Run("success", func(t *testing.T) {
		s, mock := newMockSQLiteStore(t)
		mock.ExpectExec(q).WithArgs(KeyDeviceKey, "k").WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, s.Set(context.Background(), KeyDeviceKey, "k"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error", func(t *testing.T) {
		s, mock := newMockSQLiteStore(t)
		mock.ExpectExec(q).WillReturnError(errors.New("database is locked"))

		assert.ErrorIs(t, s.Set(context.Background(), KeyDeviceKey, "k"), ErrExecutingStatement)
	})
}

func TestSQLiteStore_Delete(t *testing.T) {
	q := regexp.QuoteMeta("DELETE FROM vault_items WHERE key = ?")

	s, mock := newMockSQLiteStore(t)
	mock.ExpectExec(q).WithArgs(KeyAssets).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.Delete(context.Background(), KeyAssets))

	mock.ExpectExec(q).WithArgs(KeyAssets).WillReturnError(errors.New("boom"))
	assert.ErrorIs(t, s.Delete(context.Background(), KeyAssets), ErrExecutingStatement)
}

func TestSQLiteStore_Available(t *testing.T) {
	q := regexp.QuoteMeta("SELECT COUNT(*) FROM vault_items")

	s, mock := newMockSQLiteStore(t)
	mock.ExpectQuery(q).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	assert.NoError(t, s.Available(context.Background()))

	mock.ExpectQuery(q).WillReturnError(errors.New("no such table: vault_items"))
	assert.ErrorIs(t, s.Available(context.Background()), ErrExecutingQuery)
}

// ── real file ──

func TestSQLiteStore_File(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "fallback.db")

	s, err := NewSQLiteStore(ctx, dsn, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Available(ctx))

	_, err = s.Get(ctx, KeyAssets)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyAssets, "v1"))
	require.NoError(t, s.Set(ctx, KeyAssets, "v2"))
	v, err := s.Get(ctx, KeyAssets)
	require.NoError(t, err)
	assert.Equal(t, "v2", v)

	require.NoError(t, s.Delete(ctx, KeyAssets))
	_, err = s.Get(ctx, KeyAssets)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "fallback.db")

	s, err := NewSQLiteStore(ctx, dsn, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyDeviceKey, "key"))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(ctx, dsn, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(ctx, KeyDeviceKey)
	require.NoError(t, err)
	assert.Equal(t, "key", v)
}
