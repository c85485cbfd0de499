package service

import "errors"

// Session validator errors.
var (
	// ErrInitDataMissing is returned when the session string is absent or
	// empty.
	ErrInitDataMissing = errors.New("initData missing")

	// ErrServerMisconfigured is returned when BOT_TOKEN is not set.
	ErrServerMisconfigured = errors.New("server misconfigured")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Vault errors.
var (
	// ErrPersistenceFailure is delivered to the caller of a mutation whose
	// write did not land. The in-memory list has been rolled back.
	ErrPersistenceFailure = errors.New("failed to persist vault")

	// ErrCapacityExceeded is returned by Add on a full vault. Nothing changes.
	ErrCapacityExceeded = errors.New("vault capacity exceeded")

	// ErrDecrypt wraps crypto.ErrDecrypt and shape errors of a loaded blob.
	// The vault is treated as empty.
	ErrDecrypt = errors.New("vault data could not be decrypted")

	// ErrDeviceKeyMissing is returned when no device key is stored.
	ErrDeviceKeyMissing = errors.New("device key missing")

	// ErrVaultLocked is returned by mutations before a successful Unlock.
	ErrVaultLocked = errors.New("vault is locked")

	ErrNoAssetSelected      = errors.New("no asset selected for editing")
	ErrAssetIndexOutOfRange = errors.New("asset index out of range")
)

// Session gate errors.
var (
	// ErrInvalidSession is returned when the validator rejects the session
	// string. The host session has been closed.
	ErrInvalidSession = errors.New("invalid session")

	// ErrSessionValidation is returned when the validator could not be
	// asked (network failure, non-2xx response).
	ErrSessionValidation = errors.New("session validation failed")

	// ErrNotAuthenticated is returned when biometric authentication was
	// unavailable, refused or failed.
	ErrNotAuthenticated = errors.New("biometric authentication failed")
)
