package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/legacy-vault/internal/host"
)

const probeKey = "dlv_probe"

// HostStore adapts the host's callback [host.SecureStorage] to the
// request/response [KeyValueStore]. A panic inside the host primitive is
// converted into ErrStorageUnavailable.
type HostStore struct {
	storage host.SecureStorage
}

// NewHostStore wraps storage.
func NewHostStore(storage host.SecureStorage) *HostStore {
	return &HostStore{storage: storage}
}

type hostGetResult struct {
	value string
	found bool
	err   error
}

func (s *HostStore) Get(ctx context.Context, key string) (string, error) {
	ch := make(chan hostGetResult, 1)
	err := callSafely(func() {
		s.storage.GetItem(key, func(value string, found bool, err error) {
			ch <- hostGetResult{value: value, found: found, err: err}
		})
	})
	if err != nil {
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		switch {
		case r.err != nil:
			return "", fmt.Errorf("%w: %w", ErrStorageUnavailable, r.err)
		case !r.found:
			return "", ErrNotFound
		default:
			return r.value, nil
		}
	}
}

func (s *HostStore) Set(ctx context.Context, key, value string) error {
	return s.await(ctx, func(cb host.SetCallback) { s.storage.SetItem(key, value, cb) })
}

func (s *HostStore) Delete(ctx context.Context, key string) error {
	return s.await(ctx, func(cb host.SetCallback) { s.storage.RemoveItem(key, cb) })
}

// Available implements [Prober] by reading a key that is never written.
func (s *HostStore) Available(ctx context.Context) error {
	if s.storage == nil {
		return fmt.Errorf("%w: no host storage", ErrStorageUnavailable)
	}

	_, err := s.Get(ctx, probeKey)
	if err == nil || errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// Close closes the host storage when it holds a resource.
func (s *HostStore) Close() error {
	if c, ok := s.storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *HostStore) await(ctx context.Context, call func(host.SetCallback)) error {
	ch := make(chan error, 1)
	if err := callSafely(func() { call(func(err error) { ch <- err }) }); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-ch:
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
		}
		return nil
	}
}

func callSafely(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrStorageUnavailable, r)
		}
	}()
	fn()
	return nil
}

// CallbackStorage exposes a [KeyValueStore] through the host's callback
// [host.SecureStorage] surface. The CLI host uses it over the bbolt file.
// Each call runs on its own goroutine and answers its callback once.
type CallbackStorage struct {
	kv KeyValueStore
}

// NewCallbackStorage wraps kv.
func NewCallbackStorage(kv KeyValueStore) *CallbackStorage {
	return &CallbackStorage{kv: kv}
}

func (c *CallbackStorage) GetItem(key string, cb host.GetCallback) {
	go func() {
		value, err := c.kv.Get(context.Background(), key)
		switch {
		case errors.Is(err, ErrNotFound):
			cb("", false, nil)
		case err != nil:
			cb("", false, err)
		default:
			cb(value, true, nil)
		}
	}()
}

func (c *CallbackStorage) SetItem(key, value string, cb host.SetCallback) {
	go func() { cb(c.kv.Set(context.Background(), key, value)) }()
}

// Close closes the wrapped store when it is an io.Closer.
func (c *CallbackStorage) Close() error {
	if cl, ok := c.kv.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

func (c *CallbackStorage) RemoveItem(key string, cb host.SetCallback) {
	go func() { cb(c.kv.Delete(context.Background(), key)) }()
}
