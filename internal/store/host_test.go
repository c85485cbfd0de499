package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-vault/internal/host"
)

type panickingStorage struct{}

func (panickingStorage) GetItem(string, host.GetCallback) { panic("SecureStorage is not a function") }
func (panickingStorage) SetItem(string, string, host.SetCallback) { panic("SecureStorage is not a function") }
func (panickingStorage) RemoveItem(string, host.SetCallback) { panic("SecureStorage is not a function") }

// silentStorage never invokes its callbacks.
type silentStorage struct{}

func (silentStorage) GetItem(string, host.GetCallback) {}
func (silentStorage) SetItem(string, string, host.SetCallback) {}
func (silentStorage) RemoveItem(string, host.SetCallback) {}

func TestHostStore_MapStorage(t *testing.T) {
	ctx := context.Background()
	s := NewHostStore(host.NewMapStorage())

	require.NoError(t, s.Available(ctx))

	_, err := s.Get(ctx, KeyAssets)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyAssets, "blob"))
	v, err := s.Get(ctx, KeyAssets)
	require.NoError(t, err)
	assert.Equal(t, "blob", v)

	require.NoError(t, s.Delete(ctx, KeyAssets))
	_, err = s.Get(ctx, KeyAssets)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHostStore_UnsupportedStorage(t *testing.T) {
	ctx := context.Background()
	s := NewHostStore(host.UnsupportedStorage{})

	err := s.Available(ctx)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, host.ErrUnsupported)

	assert.ErrorIs(t, s.Set(ctx, KeyAssets, "x"), ErrStorageUnavailable)
	assert.ErrorIs(t, s.Delete(ctx, KeyAssets), ErrStorageUnavailable)
}

func TestHostStore_PanicBecomesError(t *testing.T) {
	ctx := context.Background()
	s := NewHostStore(panickingStorage{})

	assert.NotPanics(t, func() {
		_, err := s.Get(ctx, KeyAssets)
		assert.ErrorIs(t, err, ErrStorageUnavailable)
		assert.ErrorIs(t, s.Set(ctx, KeyAssets, "x"), ErrStorageUnavailable)
		assert.ErrorIs(t, s.Delete(ctx, KeyAssets), ErrStorageUnavailable)
		assert.ErrorIs(t, s.Available(ctx), ErrStorageUnavailable)
	})
}

func TestHostStore_NilStorage(t *testing.T) {
	assert.ErrorIs(t, NewHostStore(nil).Available(context.Background()), ErrStorageUnavailable)
}

func TestHostStore_ContextDeadline(t *testing.T) {
	s := NewHostStore(silentStorage{})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.Get(ctx, KeyAssets)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.ErrorIs(t, s.Set(ctx, KeyAssets, "x"), context.DeadlineExceeded)
}

func TestCallbackStorage_OverBolt(t *testing.T) {
	ctx := context.Background()
	bolt, _ := newTestBoltStore(t)
	s := NewHostStore(NewCallbackStorage(bolt))

	require.NoError(t, s.Available(ctx))

	_, err := s.Get(ctx, KeyDeviceKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, KeyDeviceKey, "k1"))
	v, err := bolt.Get(ctx, KeyDeviceKey)
	require.NoError(t, err)
	assert.Equal(t, "k1", v)

	v, err = s.Get(ctx, KeyDeviceKey)
	require.NoError(t, err)
	assert.Equal(t, "k1", v)

	require.NoError(t, s.Delete(ctx, KeyDeviceKey))
	_, err = bolt.Get(ctx, KeyDeviceKey)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCallbackStorage_ClosedBolt(t *testing.T) {
	ctx := context.Background()
	bolt, _ := newTestBoltStore(t)
	require.NoError(t, bolt.Close())
	s := NewHostStore(NewCallbackStorage(bolt))

	err := s.Available(ctx)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, ErrStoreClosed)

	assert.ErrorIs(t, s.Set(ctx, KeyAssets, "x"), ErrStoreClosed)
}
