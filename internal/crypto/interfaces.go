package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cipher_mock.go -package=mock

// VaultCipher owns all client-side cryptography of the vault. It knows
// nothing about storage, the network or the host.
//
// Scheme:
//
//	DeviceKey = hex(32 random bytes)                       (generated once)
//	AESKey    = HKDF-SHA256(DeviceKey, info=assetsInfo)    (per call, locked memory)
//	Blob      = base64(nonce ‖ AES-256-GCM(AESKey, JSON))  (stored as dlv_assets)
type VaultCipher interface {
	// GenerateDeviceKey returns a new 64-character hex device key.
	GenerateDeviceKey() (string, error)

	// EncryptData serializes data to JSON and seals it under deviceKey.
	EncryptData(data any, deviceKey string) (string, error)

	// DecryptData opens blob with deviceKey and unmarshals the plaintext
	// into target. Any failure wraps [ErrDecrypt].
	DecryptData(blob string, deviceKey string, target any) error
}
