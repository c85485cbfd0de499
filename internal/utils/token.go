package utils

import "github.com/google/uuid"

// NewToken returns a time-ordered random identifier. It prefers UUIDv7 and
// falls back to v4 when the clock read fails.
func NewToken() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
