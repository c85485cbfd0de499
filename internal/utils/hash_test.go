// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSum_MatchesDirectComputation(t *testing.T) {
	key := []byte("WebAppData")
	data := []byte("123456:bot-token")

	mac := hmac.New(sha256.New, key)
	mac.Write(data)

	assert.Equal(t, mac.Sum(nil), HMACSum(key, data))
}

func TestHMACHex(t *testing.T) {
	// RFC 4231 test case 2
	got := HMACHex([]byte("Jefe"), []byte("what do ya want for nothing?"))
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}

func TestHMACHex_DifferentKeysDiffer(t *testing.T) {
	data := []byte("auth_date=1700000000")
	assert.NotEqual(t, HMACHex([]byte("a"), data), HMACHex([]byte("b"), data))
}

func TestHMACHex_IsLowercaseHex(t *testing.T) {
	got := HMACHex([]byte("k"), []byte("v"))
	_, err := hex.DecodeString(got)
	assert.NoError(t, err)
	assert.Len(t, got, 64)
}

func TestEqualHex(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "equal", a: "abcd", b: "abcd", want: true},
		{name: "different", a: "abcd", b: "abce", want: false},
		{name: "different length", a: "abcd", b: "abc", want: false},
		{name: "both empty", a: "", b: "", want: true},
		{name: "case matters", a: "ABCD", b: "abcd", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EqualHex(tt.a, tt.b))
		})
	}
}
