package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HMACSum returns the raw HMAC-SHA256 digest of data under key.
// A new HMAC instance is created on each call, so it is safe for
// concurrent use with different keys.
func HMACSum(key, data []byte) []byte {
	hasher := hmac.New(sha256.New, key)
	hasher.Write(data)
	return hasher.Sum(nil)
}

// HMACHex is [HMACSum] rendered as lowercase hex.
//
// Example usage:
//
//	signature := utils.HMACHex(secretKey, []byte("auth_date=1\nuser=x"))
func HMACHex(key, data []byte) string {
	return hex.EncodeToString(HMACSum(key, data))
}

// EqualHex compares two hex digests in constant time.
func EqualHex(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
