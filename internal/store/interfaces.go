// Package store holds the vault's key/value persistence: a bbolt-backed
// secure store, a SQLite fallback, an adapter over the host's callback
// storage, an in-memory store and the fallback selector tying them together.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is a string-to-string store. Get returns [ErrNotFound] when
// the key is absent. Stores are read-after-write consistent but offer no
// atomicity across calls.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Prober reports whether a store can serve requests at all. A nil error
// means the store is usable.
type Prober interface {
	Available(ctx context.Context) error
}
