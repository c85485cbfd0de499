package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is printed by the CLI version command.
	Version string
	// LogDir is the directory of the client log file.
	LogDir string
}

// ClientAdapter holds the validator endpoint as seen by the client.
type ClientAdapter struct {
	// HTTPAddress is the validator base URL.
	HTTPAddress string
	// RequestTimeout bounds the validation round trip.
	RequestTimeout time.Duration
}

// ClientStorage holds the on-device store locations.
type ClientStorage struct {
	// SecurePath is the bbolt file of the secure store.
	SecurePath string
	// FallbackDSN is the SQLite file of the fallback store.
	FallbackDSN string
}

// ClientConfig is the client-specific view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig loads env variables and the JSON file (jsonPath wins over
// the CONFIG variable when non-empty), maps the client-relevant fields and
// validates them. Flags are not parsed here: the CLI owns them.
func GetClientConfig(jsonPath string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withValues(&StructuredConfig{JSONFilePath: jsonPath}).
		withJSON().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			LogDir:  cfg.App.LogDir,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SecurePath:  cfg.Storage.SecurePath,
			FallbackDSN: cfg.Storage.FallbackDSN,
		},
	}
}
