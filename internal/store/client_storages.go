package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/legacy-vault/internal/config"
	"github.com/MKhiriev/legacy-vault/internal/host"
	"github.com/MKhiriev/legacy-vault/internal/logger"
)

// ClientStorages groups the client-side stores. Vault is what the service
// layer talks to; Primary and Fallback are kept for diagnostics.
type ClientStorages struct {
	Vault    *FallbackStore
	Primary  *HostStore
	Fallback KeyValueStore
}

// OpenDeviceStorage opens the bbolt file at path and exposes it through the
// host's callback storage surface. The CLI host uses it as its secure
// storage.
func OpenDeviceStorage(path string, log *logger.Logger) (*CallbackStorage, error) {
	bolt, err := NewBoltStore(path, log)
	if err != nil {
		return nil, err
	}
	return NewCallbackStorage(bolt), nil
}

// NewClientStorages initialises the client storage layer:
//  1. Opens the SQLite fallback store at cfg.FallbackDSN and migrates it.
//  2. Wraps the host's secure storage in a [HostStore] and probes it once to
//     select the strategy. An unsupported or broken secure storage selects
//     fallback mode.
//
// Returns an error only when the fallback store cannot be opened.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, secure host.SecureStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	fallback, err := NewSQLiteStore(ctx, cfg.FallbackDSN, log)
	if err != nil {
		return nil, fmt.Errorf("fallback store error: %w", err)
	}

	primary := NewHostStore(secure)
	return &ClientStorages{
		Vault:    NewFallbackStore(ctx, primary, fallback, log),
		Primary:  primary,
		Fallback: fallback,
	}, nil
}

// Close closes every opened store, the host's secure storage included.
func (s *ClientStorages) Close() error {
	return s.Vault.Close()
}
