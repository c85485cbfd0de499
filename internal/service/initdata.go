// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sort"
	"strings"

	"github.com/MKhiriev/legacy-vault/internal/utils"
)

const (
	// webAppDataKey is the fixed HMAC key the platform uses to derive the
	// per-bot secret from the bot token.
	webAppDataKey = "WebAppData"

	hashField = "hash"
)

// InitDataPair is one key/value of a parsed session string.
type InitDataPair struct {
	Key   string
	Value string
}

// ParseInitData splits raw into ordered key/value pairs the way a browser's
// URLSearchParams does: pairs are separated by "&", the first "=" splits key
// from value, "+" means space and percent escapes are decoded. A malformed
// escape is kept as is. Empty segments are skipped.
func ParseInitData(raw string) []InitDataPair {
	pairs := make([]InitDataPair, 0, strings.Count(raw, "&")+1)
	for _, segment := range strings.Split(raw, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		pairs = append(pairs, InitDataPair{Key: decodeComponent(key), Value: decodeComponent(value)})
	}
	return pairs
}

// decodeComponent turns "+" into a space and decodes every well-formed
// "%XX" escape. Malformed escapes are copied through unchanged.
func decodeComponent(s string) string {
	if !strings.ContainsAny(s, "+%") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// dataCheckString removes every "hash" pair (returning the first one's value
// as the provided signature), sorts the rest by key in byte order keeping
// the original order of equal keys, and joins "key=value" lines with "\n".
func dataCheckString(pairs []InitDataPair) (checkString, provided string, hasHash bool) {
	rest := make([]InitDataPair, 0, len(pairs))
	for _, p := range pairs {
		if p.Key == hashField {
			if !hasHash {
				provided, hasHash = p.Value, true
			}
			continue
		}
		rest = append(rest, p)
	}

	sort.SliceStable(rest, func(i, j int) bool { return rest[i].Key < rest[j].Key })

	lines := make([]string, len(rest))
	for i, p := range rest {
		lines[i] = p.Key + "=" + p.Value
	}

	return strings.Join(lines, "\n"), provided, hasHash
}

func expectedSignature(checkString, botToken string) string {
	secretKey := utils.HMACSum([]byte(webAppDataKey), []byte(botToken))
	return utils.HMACHex(secretKey, []byte(checkString))
}

// ValidateInitData reports whether initData carries a genuine platform
// signature for botToken.
//
// ErrInitDataMissing is returned for an empty initData, then
// ErrServerMisconfigured for an empty botToken. A missing or wrong hash is a
// false verdict, not an error.
func ValidateInitData(initData, botToken string) (bool, error) {
	if initData == "" {
		return false, ErrInitDataMissing
	}
	if botToken == "" {
		return false, ErrServerMisconfigured
	}

	checkString, provided, hasHash := dataCheckString(ParseInitData(initData))
	if !hasHash {
		return false, nil
	}

	return utils.EqualHex(expectedSignature(checkString, botToken), provided), nil
}

// SignInitData appends a valid "hash" pair to initData for botToken, replacing
// any existing one. It is the inverse of [ValidateInitData] and exists for
// tests and local tooling.
func SignInitData(initData, botToken string) string {
	pairs := ParseInitData(initData)
	checkString, _, _ := dataCheckString(pairs)

	values := make([]string, 0, len(pairs)+1)
	for _, segment := range strings.Split(initData, "&") {
		if segment == "" {
			continue
		}
		key, _, _ := strings.Cut(segment, "=")
		if decodeComponent(key) == hashField {
			continue
		}
		values = append(values, segment)
	}
	values = append(values, hashField+"="+expectedSignature(checkString, botToken))

	return strings.Join(values, "&")
}
