// Package config loads, merges and validates runtime configuration.
//
// Sources are applied in order, later non-zero values overriding earlier ones:
//  1. Environment variables (with defaults)
//  2. Command-line flags (server only; the client CLI owns its flags)
//  3. JSON config file
//
// The bot token used to verify session signatures is deliberately not part
// of this package: it is read from the environment on every request so that
// it never ends up in a config dump or a log line.
package config
