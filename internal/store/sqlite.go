package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/legacy-vault/internal/logger"
)

// SQLiteStore is the fallback [KeyValueStore]: one row per key in the
// vault_items table.
type SQLiteStore struct {
	db         *DB
	classifier *SQLiteErrorClassifier

	// retryDelays are the pauses before each retry of a write that failed
	// with a retryable error.
	retryDelays []time.Duration

	logger *logger.Logger
}

var defaultRetryDelays = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond}

// NewSQLiteStore opens the SQLite file at dsn and runs migrations.
func NewSQLiteStore(ctx context.Context, dsn string, log *logger.Logger) (*SQLiteStore, error) {
	db, err := NewConnectSQLite(ctx, dsn, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error migrating fallback store")
		_ = db.Close()
		return nil, err
	}

	return NewSQLiteStoreFromDB(db, log), nil
}

// NewSQLiteStoreFromDB wraps an already migrated connection.
func NewSQLiteStoreFromDB(db *DB, log *logger.Logger) *SQLiteStore {
	return &SQLiteStore{
		db:          db,
		classifier:  NewSQLiteErrorClassifier(),
		retryDelays: defaultRetryDelays,
		logger:      log,
	}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetItemQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrNotFound
	case err != nil:
		s.logger.Err(err).Str("func", "*SQLiteStore.Get").Str("key", key).Msg("error reading item")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertItemQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = s.exec(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*SQLiteStore.Set").Str("key", key).Msg("error writing item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteItemQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = s.exec(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*SQLiteStore.Delete").Str("key", key).Msg("error deleting item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// exec runs a write statement, retrying while the database is busy.
func (s *SQLiteStore) exec(ctx context.Context, query string, args ...any) error {
	_, err := s.db.ExecContext(ctx, query, args...)
	for _, delay := range s.retryDelays {
		if err == nil || s.classifier.Classify(err) != Retryable {
			return err
		}

		s.logger.Warn().Err(err).Str("func", "*SQLiteStore.exec").Dur("delay", delay).Msg("database busy, retrying")
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}

		_, err = s.db.ExecContext(ctx, query, args...)
	}
	return err
}

// Available implements [Prober].
func (s *SQLiteStore) Available(ctx context.Context) error {
	query, args, err := buildProbeQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Close closes the underlying connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
