package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells whether a failed database operation may be
// attempted again.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations and corruption.
	NonRetryable ErrorClassification = iota

	// Retryable marks contention that clears on its own, e.g. another
	// process holding the write lock.
	Retryable
)

// SQLiteErrorClassifier classifies go-sqlite3 driver errors.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify unwraps err as a sqlite3.Error and delegates to
// [ClassifySQLiteError]. Anything else is [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	return NonRetryable
}

// ClassifySQLiteError maps a primary SQLite result code.
// See https://www.sqlite.org/rescode.html.
//
// Retryable: SQLITE_BUSY, SQLITE_LOCKED.
// Everything else, including SQLITE_CONSTRAINT, SQLITE_CORRUPT and
// SQLITE_FULL, is [NonRetryable].
func ClassifySQLiteError(err sqlite3.Error) ErrorClassification {
	switch err.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}
