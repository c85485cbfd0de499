// Package host describes the surface the mini-app host exposes to the vault:
// a callback-style secure storage, a biometric gate, user feedback and a
// session closer. Every interface has a fallback implementation here so the
// vault runs unchanged outside the host (the CLI, tests).
package host
