// Package utils provides small helpers shared by the validator and the
// vault client: HMAC-SHA256 signing, JSON response writing, a preconfigured
// resty client and random token generation.
package utils
