// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// validator server and the vault client.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// App holds build/version and log placement settings.
	App App `envPrefix:"APP_"`

	// Storage holds the on-device key/value store locations.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the validator HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the validator endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"dev"`

	// LogDir is where the client writes vault.log. Empty means next to the
	// executable.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// Storage holds the locations of the two key/value stores used by the
// vault client.
type Storage struct {
	// SecurePath is the bbolt file backing the secure store.
	// Env: STORAGE_SECURE_PATH
	SecurePath string `env:"SECURE_PATH" envDefault:"vault.bolt"`

	// FallbackDSN is the SQLite file backing the fallback store.
	// Env: STORAGE_FALLBACK_DSN
	FallbackDSN string `env:"FALLBACK_DSN" envDefault:"vault-fallback.db"`
}

// Server holds the validator listener settings.
type Server struct {
	// HTTPAddress is the "host:port" the validator listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"localhost:8080"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// Adapter holds the client-side settings for reaching the validator.
type Adapter struct {
	// HTTPAddress is the validator base URL (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:"http://localhost:8080"`

	// RequestTimeout bounds the validation round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// GetStructuredConfig loads the server configuration from env, command-line
// flags and the optional JSON file, then validates it.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
