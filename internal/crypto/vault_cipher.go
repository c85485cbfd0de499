// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/hkdf"
)

const (
	// DeviceKeySize is the number of random bytes behind a device key.
	DeviceKeySize = 32

	aesKeySize = 32
	assetsInfo = "legacy-vault assets v1"
)

// vaultCipher is the private implementation of [VaultCipher].
type vaultCipher struct {
	random io.Reader
}

// NewVaultCipher constructs a [VaultCipher] reading randomness from the OS
// CSPRNG.
func NewVaultCipher() VaultCipher {
	return &vaultCipher{random: rand.Reader}
}

// GenerateDeviceKey implements [VaultCipher].
func (c *vaultCipher) GenerateDeviceKey() (string, error) {
	key := make([]byte, DeviceKeySize)
	if _, err := io.ReadFull(c.random, key); err != nil {
		return "", fmt.Errorf("generate device key: %w", err)
	}

	return hex.EncodeToString(key), nil
}

// EncryptData implements [VaultCipher]. A fresh 12-byte nonce is prepended
// to the ciphertext: blob = base64(nonce ‖ ciphertext).
func (c *vaultCipher) EncryptData(data any, deviceKey string) (string, error) {
	plaintext, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal data: %w", err)
	}

	gcm, key, err := c.newGCM(deviceKey)
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptData implements [VaultCipher].
func (c *vaultCipher) DecryptData(blob string, deviceKey string, target any) error {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return fmt.Errorf("%w: decode base64: %v", ErrDecrypt, err)
	}

	gcm, key, err := c.newGCM(deviceKey)
	if err != nil {
		return err
	}
	defer key.Destroy()

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize+gcm.Overhead() {
		return fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}
	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("%w: open: %v", ErrDecrypt, err)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: unmarshal: %v", ErrDecrypt, err)
	}

	return nil
}

// newGCM derives the AES key for deviceKey into a locked buffer and builds
// the AEAD. The caller must destroy the returned buffer.
func (c *vaultCipher) newGCM(deviceKey string) (cipher.AEAD, *memguard.LockedBuffer, error) {
	key, err := deriveKey(deviceKey)
	if err != nil {
		return nil, nil, err
	}

	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		key.Destroy()
		return nil, nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		key.Destroy()
		return nil, nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, key, nil
}

// deriveKey expands the device key string into a 256-bit AES key with
// HKDF-SHA256. The intermediate slice is wiped by memguard.
func deriveKey(deviceKey string) (*memguard.LockedBuffer, error) {
	if deviceKey == "" {
		return nil, ErrEmptyDeviceKey
	}

	r := hkdf.New(sha256.New, []byte(deviceKey), nil, []byte(assetsInfo))
	k := make([]byte, aesKeySize)
	if _, err := io.ReadFull(r, k); err != nil {
		return nil, fmt.Errorf("reading from HKDF: %w", err)
	}

	return memguard.NewBufferFromBytes(k), nil
}
