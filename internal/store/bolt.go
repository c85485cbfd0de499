// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/legacy-vault/internal/logger"
)

var vaultBucket = []byte("vault")

// BoltStore is the secure primary [KeyValueStore]: a single bbolt file with
// owner-only permissions.
type BoltStore struct {
	db     *bolt.DB
	logger *logger.Logger
}

// NewBoltStore opens (or creates) the bbolt file at path and makes sure the
// vault bucket exists.
func NewBoltStore(path string, log *logger.Logger) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create secure store dir: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltStore").Msg("error opening secure store")
		return nil, fmt.Errorf("open secure store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(vaultBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create vault bucket: %w", err)
	}
	log.Debug().Str("func", "NewBoltStore").Msg("secure store opened")

	return &BoltStore{db: db, logger: log}, nil
}

func (s *BoltStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var value string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(vaultBucket)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get([]byte(key))
		if v == nil {
			return ErrNotFound
		}
		value = string(v)
		return nil
	})
	if err != nil {
		return "", s.wrap(err)
	}

	return value, nil
}

func (s *BoltStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(vaultBucket).Put([]byte(key), []byte(value))
	})
	return s.wrap(err)
}

func (s *BoltStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(vaultBucket).Delete([]byte(key))
	})
	return s.wrap(err)
}

// Available implements [Prober] by opening a read transaction on the vault
// bucket.
func (s *BoltStore) Available(context.Context) error {
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(vaultBucket) == nil {
			return fmt.Errorf("%w: vault bucket missing", ErrStorageUnavailable)
		}
		return nil
	})
}

// Close releases the file lock.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) wrap(err error) error {
	switch {
	case err == nil, errors.Is(err, ErrNotFound):
		return err
	case errors.Is(err, bolt.ErrDatabaseNotOpen):
		return ErrStoreClosed
	default:
		return fmt.Errorf("secure store: %w", err)
	}
}
