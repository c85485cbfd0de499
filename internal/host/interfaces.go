package host

//go:generate mockgen -source=interfaces.go -destination=../mock/host_mock.go -package=mock

import "context"

// GetCallback receives the result of [SecureStorage.GetItem]. found is false
// when the key has never been written (or was removed).
type GetCallback func(value string, found bool, err error)

// SetCallback receives the result of a write or removal.
type SetCallback func(err error)

// SecureStorage is the host's device-bound key/value storage. Calls return
// immediately; the result is delivered to the callback exactly once, possibly
// on another goroutine. Implementations may panic if the feature is missing.
type SecureStorage interface {
	GetItem(key string, cb GetCallback)
	SetItem(key, value string, cb SetCallback)
	RemoveItem(key string, cb SetCallback)
}

// BiometricResult is the outcome of [BiometricManager.Authenticate].
type BiometricResult struct {
	Authenticated bool
	// Token is opaque. It only proves that this session passed the gate.
	Token string
}

// BiometricManager gates vault access behind the host's biometric prompt.
type BiometricManager interface {
	// Available reports whether biometrics exist on this device.
	Available() bool
	// AccessGranted reports whether the user already allowed biometric use.
	AccessGranted() bool
	// RequestAccess asks the user for permission to use biometrics.
	RequestAccess(ctx context.Context, reason string) (bool, error)
	// Authenticate runs the biometric prompt.
	Authenticate(ctx context.Context, reason string) (BiometricResult, error)
}

// NotificationKind is the haptic notification style.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationWarning NotificationKind = "warning"
	NotificationError   NotificationKind = "error"
)

// Feedback delivers user-facing notices.
type Feedback interface {
	// ShowAlert shows msg to the user.
	ShowAlert(msg string)
	// NotificationOccurred fires a haptic notification.
	NotificationOccurred(kind NotificationKind)
}

// Closer ends the host session.
type Closer interface {
	Close()
}

// CloserFunc adapts a plain function to [Closer].
type CloserFunc func()

// Close calls f.
func (f CloserFunc) Close() { f() }

// Host bundles the host surfaces together with the session payload the host
// issued for this launch.
type Host struct {
	InitData  string
	Storage   SecureStorage
	Biometric BiometricManager
	Feedback  Feedback
	Closer    Closer
}
