package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// AccessToken overrides the cached credential when non-empty.
	AccessToken string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the inference service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// RetryCount is the number of retries for failed requests.
	RetryCount int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// CacheDir is the directory removed on reset.
	CacheDir string
	// DB holds local database settings.
	DB ClientDB
}

// ClientLogging contains logger settings.
type ClientLogging struct {
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Logging contains logger settings.
	Logging ClientLogging
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. fs may be nil when the caller has no
// command-line flags, which is the case for the SDK.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps a structured config onto the client view without
// validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			AccessToken: cfg.App.AccessToken,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
		},
		Storage: ClientStorage{
			CacheDir: cfg.Storage.CacheDir,
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Logging: ClientLogging{
			Level: cfg.Logging.Level,
			File:  cfg.Logging.File,
		},
	}
}

// Validate exposes the client config checks to callers that assemble a
// [ClientConfig] by hand.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
