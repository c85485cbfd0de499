package service

import (
	"context"

	"github.com/MKhiriev/legacy-vault/models"
)

// ClientDeviceKeyService owns the lifecycle of the device key, the secret
// every vault blob is sealed under.
type ClientDeviceKeyService interface {
	// EnsureDeviceKey returns the stored device key, generating and storing
	// one first if none exists. The returned value is always what storage
	// holds after the call, so concurrent first launches converge on a single
	// key.
	EnsureDeviceKey(ctx context.Context) (string, error)

	// GetDeviceKey returns the stored device key or ErrDeviceKeyMissing.
	GetDeviceKey(ctx context.Context) (string, error)

	// DestroyDeviceKey removes the device key. Every blob sealed under it
	// becomes unreadable.
	DestroyDeviceKey(ctx context.Context) error
}

// ClientVaultService holds the decrypted asset list for the current session
// and persists every change optimistically.
type ClientVaultService interface {
	// Unlock passes the session gate, ensures the device key and loads the
	// stored assets. A soft load failure (missing key, unreadable blob) still
	// unlocks with an empty list and is reported by [VaultState.LoadErr].
	Unlock(ctx context.Context) error

	// LoadAssets replaces the in-memory list with the stored one. On any
	// failure the list becomes empty.
	LoadAssets(ctx context.Context) error

	// Add appends record. ErrCapacityExceeded is returned synchronously on a
	// full vault.
	Add(ctx context.Context, record models.AssetRecord) (*PendingMutation, error)

	// Edit replaces the record at index and leaves edit mode.
	Edit(ctx context.Context, index int, record models.AssetRecord) (*PendingMutation, error)

	// SaveEdit replaces the record selected by BeginEdit.
	SaveEdit(ctx context.Context, record models.AssetRecord) (*PendingMutation, error)

	// Delete removes the record at index.
	Delete(ctx context.Context, index int) (*PendingMutation, error)

	BeginEdit(index int) error
	CancelEdit()
	EditIndex() (int, bool)

	// Assets returns a copy of the in-memory list.
	Assets() models.AssetList

	// State returns a snapshot of the vault state.
	State() VaultState

	// Pending reports the number of mutations whose persist step has not
	// resolved yet.
	Pending() int

	// Wait blocks until every started mutation has resolved or ctx ends.
	Wait(ctx context.Context) error

	// Reset deletes the stored blob and the device key and locks the vault.
	Reset(ctx context.Context) error
}

// ClientSessionGate authorises a launch before the vault may be unlocked.
type ClientSessionGate interface {
	// Open validates the host session string with the validator and runs the
	// biometric prompt. Only a returned Session may unlock the vault.
	Open(ctx context.Context) (*Session, error)
}
