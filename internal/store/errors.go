package store

import "errors"

var (
	// ErrNotFound is returned by Get when the key has no value.
	ErrNotFound = errors.New("key not found")

	// ErrStorageUnavailable marks a failure of the secure store. It is
	// logged and recovered by the fallback, never surfaced on its own.
	ErrStorageUnavailable = errors.New("secure storage unavailable")

	// ErrStoreClosed is returned after Close.
	ErrStoreClosed = errors.New("store is closed")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to executing statement")
)
