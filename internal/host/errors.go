package host

import "errors"

var (
	// ErrUnsupported is reported by the fallback storage for every call.
	ErrUnsupported = errors.New("host feature is not supported")

	// ErrBiometricUnavailable is returned when no biometric gate exists.
	ErrBiometricUnavailable = errors.New("biometric authentication unavailable")
)
