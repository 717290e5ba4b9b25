// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the tabpfn
// client. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Every environment variable is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the HTTP client talking to the inference
	// service.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache directory and database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Logging holds the log level and optional log file.
	Logging Logging `envPrefix:"LOGGING_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the TABPFN_CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// AccessToken, when set, is used instead of the cached credential.
	// Env: TABPFN_APP_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`
}

// Adapter holds outbound HTTP settings.
type Adapter struct {
	// HTTPAddress is the base URL of the inference service
	// (e.g. "http://localhost:8080").
	// Env: TABPFN_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s", "5m").
	// Env: TABPFN_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of resty retries for failed requests.
	// Env: TABPFN_ADAPTER_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// CacheDir is the directory holding every locally cached artifact.
	// Reset removes it entirely.
	// Env: TABPFN_STORAGE_CACHE_DIR
	CacheDir string `env:"CACHE_DIR"`

	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the go-sqlite3 data source name. Defaults to
	// <CacheDir>/tabpfn.db.
	// Env: TABPFN_STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Logging holds the logger settings.
type Logging struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: TABPFN_LOGGING_LEVEL
	Level string `env:"LEVEL"`

	// File is an optional path the CLI appends log entries to.
	// Env: TABPFN_LOGGING_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. For every field the first non-zero value wins in
// the following priority order:
//  1. Command-line flags from fs (skipped when fs is nil)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
