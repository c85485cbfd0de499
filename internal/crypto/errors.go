package crypto

import "errors"

var (
	// ErrDecrypt covers every way a blob can fail to open: bad base64,
	// short input, wrong key, tampered ciphertext, or a plaintext that does
	// not fit the target.
	ErrDecrypt = errors.New("unable to decrypt vault data")

	// ErrEmptyDeviceKey is returned when an empty device key is supplied.
	ErrEmptyDeviceKey = errors.New("device key is empty")
)
