// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/legacy-vault/internal/crypto"
	"github.com/MKhiriev/legacy-vault/internal/logger"
	"github.com/MKhiriev/legacy-vault/internal/store"
)

type clientDeviceKeyService struct {
	store  store.KeyValueStore
	cipher crypto.VaultCipher

	group  singleflight.Group
	logger *logger.Logger
}

// NewClientDeviceKeyService returns a [ClientDeviceKeyService] keeping the
// device key in kv under store.KeyDeviceKey.
func NewClientDeviceKeyService(kv store.KeyValueStore, cipher crypto.VaultCipher, logger *logger.Logger) ClientDeviceKeyService {
	return &clientDeviceKeyService{
		store:  kv,
		cipher: cipher,
		logger: logger,
	}
}

func (s *clientDeviceKeyService) GetDeviceKey(ctx context.Context) (string, error) {
	key, err := s.store.Get(ctx, store.KeyDeviceKey)
	if errors.Is(err, store.ErrNotFound) || (err == nil && key == "") {
		return "", ErrDeviceKeyMissing
	}
	if err != nil {
		return "", fmt.Errorf("error reading device key: %w", err)
	}
	return key, nil
}

func (s *clientDeviceKeyService) EnsureDeviceKey(ctx context.Context) (string, error) {
	key, err := s.GetDeviceKey(ctx)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, ErrDeviceKeyMissing) {
		return "", err
	}

	v, err, _ := s.group.Do(store.KeyDeviceKey, func() (any, error) {
		return s.generate(context.WithoutCancel(ctx))
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// generate runs at most once at a time. Another process may have written a
// key between the first read and here, so the store is checked again and
// the value returned is always the one read back after the write.
func (s *clientDeviceKeyService) generate(ctx context.Context) (string, error) {
	key, err := s.GetDeviceKey(ctx)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, ErrDeviceKeyMissing) {
		return "", err
	}

	key, err = s.cipher.GenerateDeviceKey()
	if err != nil {
		return "", fmt.Errorf("error generating device key: %w", err)
	}

	if err = s.store.Set(ctx, store.KeyDeviceKey, key); err != nil {
		return "", fmt.Errorf("error storing device key: %w", err)
	}

	stored, err := s.GetDeviceKey(ctx)
	if err != nil {
		return "", fmt.Errorf("error re-reading device key: %w", err)
	}

	s.logger.Info().Str("func", "clientDeviceKeyService.generate").Msg("device key generated")
	return stored, nil
}

func (s *clientDeviceKeyService) DestroyDeviceKey(ctx context.Context) error {
	if err := s.store.Delete(ctx, store.KeyDeviceKey); err != nil {
		return fmt.Errorf("error deleting device key: %w", err)
	}

	s.logger.Info().Str("func", "clientDeviceKeyService.DestroyDeviceKey").Msg("device key destroyed")
	return nil
}
