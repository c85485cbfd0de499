// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/legacy-vault/internal/logger"
)

// Mode is the storage strategy chosen at construction.
type Mode string

const (
	ModeSecure   Mode = "secure"
	ModeFallback Mode = "fallback"
)

// FallbackStore routes calls to a secure primary store, falling back to a
// second store when the primary is missing or failing.
//
// The primary is probed once in [NewFallbackStore]. When the probe fails
// every call goes to the fallback. When it passes, a call that errors or
// panics on the primary is retried on the fallback and the primary failure is
// logged as ErrStorageUnavailable. Only the fallback's own failures surface.
//
// A write that lands in the fallback also records an owner marker there.
// While the marker exists the fallback copy wins over whatever the primary
// still holds for that key. The next successful primary write clears it.
type FallbackStore struct {
	primary  KeyValueStore
	fallback KeyValueStore
	mode     Mode
	logger   *logger.Logger
}

// NewFallbackStore probes primary (if it implements [Prober]) and selects the
// strategy. A nil primary selects fallback mode.
func NewFallbackStore(ctx context.Context, primary, fallback KeyValueStore, log *logger.Logger) *FallbackStore {
	s := &FallbackStore{
		primary:  primary,
		fallback: fallback,
		mode:     ModeSecure,
		logger:   log,
	}

	if err := probe(ctx, primary); err != nil {
		log.Warn().Err(err).Str("func", "NewFallbackStore").Msg("secure storage unavailable, using fallback store")
		s.mode = ModeFallback
		return s
	}
	log.Debug().Str("func", "NewFallbackStore").Msg("using secure storage")

	return s
}

// Mode reports the strategy selected at construction.
func (s *FallbackStore) Mode() Mode {
	return s.mode
}

// Get reads key. In secure mode a failed primary read is answered from the
// fallback; when the fallback has nothing either, the result is
// ErrStorageUnavailable, never ErrNotFound, because the primary may still
// hold the value.
func (s *FallbackStore) Get(ctx context.Context, key string) (string, error) {
	if s.mode == ModeFallback || s.fallbackOwns(ctx, key) {
		return s.fallback.Get(ctx, key)
	}

	var value string
	err := guard(func() (err error) {
		value, err = s.primary.Get(ctx, key)
		return err
	})
	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, ErrNotFound):
		value, fbErr := s.fallback.Get(ctx, key)
		if fbErr != nil {
			if !errors.Is(fbErr, ErrNotFound) {
				s.logger.Warn().Err(fbErr).Str("func", "*FallbackStore.Get").Str("key", key).Msg("fallback lookup failed")
			}
			return "", ErrNotFound
		}
		return value, nil
	default:
		s.degraded("Get", key, err)
		value, fbErr := s.fallback.Get(ctx, key)
		if errors.Is(fbErr, ErrNotFound) {
			return "", unavailable(err)
		}
		return value, fbErr
	}
}

func (s *FallbackStore) Set(ctx context.Context, key, value string) error {
	if s.mode == ModeFallback {
		return s.setFallback(ctx, key, value)
	}

	err := guard(func() error { return s.primary.Set(ctx, key, value) })
	if err == nil {
		return s.release(ctx, key, value)
	}

	s.degraded("Set", key, err)
	if err = s.setFallback(ctx, key, value); err != nil {
		return err
	}
	// the marker already shadows it, removing the stale copy is best effort
	if err = guard(func() error { return s.primary.Delete(ctx, key) }); err != nil {
		s.degraded("Delete", key, err)
	}
	return nil
}

// Delete removes key from both stores in secure mode so a value written by a
// degraded call cannot resurface.
func (s *FallbackStore) Delete(ctx context.Context, key string) error {
	if s.mode == ModeSecure {
		if err := guard(func() error { return s.primary.Delete(ctx, key) }); err != nil {
			s.degraded("Delete", key, err)
		}
	}

	for _, k := range []string{key, ownerKey(key)} {
		if err := s.fallback.Delete(ctx, k); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return nil
}

// setFallback writes value and then the owner marker. A missing marker would
// let an older primary value win on the next read, so its failure is the
// write's failure.
func (s *FallbackStore) setFallback(ctx context.Context, key, value string) error {
	if err := s.fallback.Set(ctx, key, value); err != nil {
		return err
	}
	if err := s.fallback.Set(ctx, ownerKey(key), "1"); err != nil {
		return fmt.Errorf("mark fallback owner: %w", err)
	}
	return nil
}

// release hands key back to the primary after a successful primary write.
// When the marker cannot be dropped the fallback copy is brought up to date
// instead, so reads stay consistent with the write either way.
func (s *FallbackStore) release(ctx context.Context, key, value string) error {
	err := s.fallback.Delete(ctx, ownerKey(key))
	if err == nil || errors.Is(err, ErrNotFound) {
		if err = s.fallback.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
			s.logger.Warn().Err(err).Str("func", "*FallbackStore.release").Str("key", key).Msg("stale fallback copy left behind")
		}
		return nil
	}

	s.logger.Warn().Err(err).Str("func", "*FallbackStore.release").Str("key", key).Msg("fallback owner marker not cleared")
	return s.fallback.Set(ctx, key, value)
}

func (s *FallbackStore) fallbackOwns(ctx context.Context, key string) bool {
	_, err := s.fallback.Get(ctx, ownerKey(key))
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.logger.Warn().Err(err).Str("func", "*FallbackStore.fallbackOwns").Str("key", key).Msg("owner marker lookup failed")
	}
	return err == nil
}

// Close closes both stores when they implement io.Closer.
func (s *FallbackStore) Close() error {
	var errs []error
	for _, st := range []KeyValueStore{s.primary, s.fallback} {
		if c, ok := st.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}

func (s *FallbackStore) degraded(op, key string, err error) {
	s.logger.Warn().Err(unavailable(err)).
		Str("func", "*FallbackStore."+op).
		Str("key", key).
		Msg("secure storage call failed, using fallback store")
}

func unavailable(err error) error {
	if errors.Is(err, ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

func probe(ctx context.Context, primary KeyValueStore) error {
	if primary == nil {
		return fmt.Errorf("%w: no secure store", ErrStorageUnavailable)
	}

	p, ok := primary.(Prober)
	if !ok {
		return nil
	}

	return guard(func() error { return p.Available(ctx) })
}

// guard runs fn and converts a panic into ErrStorageUnavailable.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrStorageUnavailable, r)
		}
	}()
	return fn()
}
