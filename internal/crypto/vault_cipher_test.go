package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/legacy-vault/models"
)

// ── GenerateDeviceKey ──

func TestGenerateDeviceKey_LengthAndRandomness(t *testing.T) {
	c := NewVaultCipher()

	k1, err := c.GenerateDeviceKey()
	require.NoError(t, err)
	k2, err := c.GenerateDeviceKey()
	require.NoError(t, err)

	assert.Len(t, k1, 2*DeviceKeySize)
	raw, err := hex.DecodeString(k1)
	require.NoError(t, err)
	assert.Len(t, raw, DeviceKeySize)
	assert.NotEqual(t, k1, k2)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestGenerateDeviceKey_RandomFailure(t *testing.T) {
	c := &vaultCipher{random: failingReader{}}

	_, err := c.GenerateDeviceKey()
	assert.Error(t, err)
}

// ── EncryptData / DecryptData ──

func sampleAssets() models.AssetList {
	return models.AssetList{
		{Type: models.AssetTypeCrypto, Details: "BTC wallet", Notes: "seed in safe"},
		{Type: models.AssetTypeDomain, Details: "example.com", Notes: ""},
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c := NewVaultCipher()
	key, err := c.GenerateDeviceKey()
	require.NoError(t, err)

	blob, err := c.EncryptData(sampleAssets(), key)
	require.NoError(t, err)

	var got models.AssetList
	require.NoError(t, c.DecryptData(blob, key, &got))
	assert.Equal(t, sampleAssets(), got)
}

func TestEncryptData_EmptyList(t *testing.T) {
	c := NewVaultCipher()
	key, _ := c.GenerateDeviceKey()

	blob, err := c.EncryptData(models.AssetList{}, key)
	require.NoError(t, err)

	var got models.AssetList
	require.NoError(t, c.DecryptData(blob, key, &got))
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestEncryptData_BlobLayout(t *testing.T) {
	c := NewVaultCipher()
	key, _ := c.GenerateDeviceKey()

	blob, err := c.EncryptData(sampleAssets(), key)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)
	// 12-byte nonce + 16-byte tag around the JSON payload
	assert.Greater(t, len(raw), 12+16)
}

func TestEncryptData_FreshNoncePerCall(t *testing.T) {
	c := NewVaultCipher()
	key, _ := c.GenerateDeviceKey()

	b1, err := c.EncryptData(sampleAssets(), key)
	require.NoError(t, err)
	b2, err := c.EncryptData(sampleAssets(), key)
	require.NoError(t, err)

	assert.NotEqual(t, b1, b2)
}

func TestEncryptData_EmptyKey(t *testing.T) {
	_, err := NewVaultCipher().EncryptData(sampleAssets(), "")
	assert.ErrorIs(t, err, ErrEmptyDeviceKey)
}

func TestEncryptData_Unmarshalable(t *testing.T) {
	_, err := NewVaultCipher().EncryptData(make(chan int), "k")
	assert.Error(t, err)
}

func TestDecryptData_Failures(t *testing.T) {
	c := NewVaultCipher()
	key, _ := c.GenerateDeviceKey()
	otherKey, _ := c.GenerateDeviceKey()

	blob, err := c.EncryptData(sampleAssets(), key)
	require.NoError(t, err)

	raw, _ := base64.StdEncoding.DecodeString(blob)
	tampered := append([]byte(nil), raw...)
	tampered[len(tampered)-1] ^= 0xFF

	objectBlob, err := c.EncryptData(map[string]string{"not": "a list"}, key)
	require.NoError(t, err)

	tests := []struct {
		name string
		blob string
		key  string
	}{
		{name: "wrong key", blob: blob, key: otherKey},
		{name: "not base64", blob: "%%%not-base64%%%", key: key},
		{name: "too short", blob: base64.StdEncoding.EncodeToString([]byte("short")), key: key},
		{name: "tampered ciphertext", blob: base64.StdEncoding.EncodeToString(tampered), key: key},
		{name: "shape mismatch", blob: objectBlob, key: key},
		{name: "empty blob", blob: "", key: key},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.AssetList
			err := c.DecryptData(tt.blob, tt.key, &got)
			assert.ErrorIs(t, err, ErrDecrypt)
			assert.Empty(t, got)
		})
	}
}

func TestDecryptData_EmptyKey(t *testing.T) {
	var got models.AssetList
	err := NewVaultCipher().DecryptData("AAAA", "", &got)
	assert.ErrorIs(t, err, ErrEmptyDeviceKey)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	k1, err := deriveKey("abc")
	require.NoError(t, err)
	defer k1.Destroy()
	k2, err := deriveKey("abc")
	require.NoError(t, err)
	defer k2.Destroy()
	k3, err := deriveKey("abd")
	require.NoError(t, err)
	defer k3.Destroy()

	assert.Equal(t, k1.Bytes(), k2.Bytes())
	assert.NotEqual(t, k1.Bytes(), k3.Bytes())
	assert.Len(t, k1.Bytes(), aesKeySize)
}
