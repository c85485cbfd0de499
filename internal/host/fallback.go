package host

import (
	"context"
	"sync"
)

// UnsupportedStorage is the fallback [SecureStorage] of a host without secure
// storage. Every callback receives ErrUnsupported.
type UnsupportedStorage struct{}

func (UnsupportedStorage) GetItem(_ string, cb GetCallback) { cb("", false, ErrUnsupported) }

func (UnsupportedStorage) SetItem(_, _ string, cb SetCallback) { cb(ErrUnsupported) }

func (UnsupportedStorage) RemoveItem(_ string, cb SetCallback) { cb(ErrUnsupported) }

// MapStorage is an in-process [SecureStorage] backed by a map. Callbacks run
// on a separate goroutine, like a real host.
type MapStorage struct {
	mu    sync.Mutex
	items map[string]string
}

// NewMapStorage returns an empty MapStorage.
func NewMapStorage() *MapStorage {
	return &MapStorage{items: make(map[string]string)}
}

func (s *MapStorage) GetItem(key string, cb GetCallback) {
	go func() {
		s.mu.Lock()
		v, ok := s.items[key]
		s.mu.Unlock()
		cb(v, ok, nil)
	}()
}

func (s *MapStorage) SetItem(key, value string, cb SetCallback) {
	go func() {
		s.mu.Lock()
		s.items[key] = value
		s.mu.Unlock()
		cb(nil)
	}()
}

func (s *MapStorage) RemoveItem(key string, cb SetCallback) {
	go func() {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
		cb(nil)
	}()
}

// NoBiometric is the fallback [BiometricManager]: biometrics are absent and
// every authentication is refused.
type NoBiometric struct{}

func (NoBiometric) Available() bool { return false }

func (NoBiometric) AccessGranted() bool { return false }

func (NoBiometric) RequestAccess(context.Context, string) (bool, error) { return false, nil }

func (NoBiometric) Authenticate(context.Context, string) (BiometricResult, error) {
	return BiometricResult{}, ErrBiometricUnavailable
}

// NopFeedback drops every notice.
type NopFeedback struct{}

func (NopFeedback) ShowAlert(string) {}

func (NopFeedback) NotificationOccurred(NotificationKind) {}

// NopCloser ignores Close.
type NopCloser struct{}

func (NopCloser) Close() {}

// Fallback returns a Host where every surface is the fallback implementation.
func Fallback(initData string) *Host {
	return &Host{
		InitData:  initData,
		Storage:   UnsupportedStorage{},
		Biometric: NoBiometric{},
		Feedback:  NopFeedback{},
		Closer:    NopCloser{},
	}
}
