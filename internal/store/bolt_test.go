package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-vault/internal/logger"
)

func newTestBoltStore(t *testing.T) (*BoltStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vault.bolt")

	s, err := NewBoltStore(path, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s, path
}

func TestBoltStore_CRUD(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestBoltStore(t)

	_, err := s.Get(ctx, KeyDeviceKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyDeviceKey, "abc"))
	v, err := s.Get(ctx, KeyDeviceKey)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)

	require.NoError(t, s.Set(ctx, KeyDeviceKey, ""))
	v, err = s.Get(ctx, KeyDeviceKey)
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, s.Delete(ctx, KeyDeviceKey))
	_, err = s.Get(ctx, KeyDeviceKey)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, s.Delete(ctx, KeyDeviceKey))
}

func TestBoltStore_FilePermissions(t *testing.T) {
	_, path := newTestBoltStore(t)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestBoltStore_Available(t *testing.T) {
	s, _ := newTestBoltStore(t)
	assert.NoError(t, s.Available(context.Background()))
}

func TestBoltStore_Closed(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestBoltStore(t)
	require.NoError(t, s.Close())

	_, err := s.Get(ctx, KeyAssets)
	assert.ErrorIs(t, err, ErrStoreClosed)
	assert.ErrorIs(t, s.Set(ctx, KeyAssets, "x"), ErrStoreClosed)
	assert.Error(t, s.Available(ctx))
}

func TestBoltStore_CancelledContext(t *testing.T) {
	s, _ := newTestBoltStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, KeyAssets)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Set(ctx, KeyAssets, "x"), context.Canceled)
	assert.ErrorIs(t, s.Delete(ctx, KeyAssets), context.Canceled)
}

func TestNewBoltStore_BadPath(t *testing.T) {
	dir := t.TempDir()
	// a directory cannot be opened as a bbolt file
	_, err := NewBoltStore(dir, logger.Nop())
	assert.Error(t, err)
}
