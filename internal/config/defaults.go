// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Default values used when no other source provides a field.
const (
	DefaultHTTPAddress    = "http://localhost:8080"
	DefaultRequestTimeout = 5 * time.Minute
	DefaultLogLevel       = "info"
	DefaultCacheDirName   = "tabpfn"
	DefaultDBFileName     = "tabpfn.db"
)

// defaultConfig returns the built-in defaults. When cacheDir is empty the
// cache directory defaults to <user cache dir>/tabpfn. The default DSN points
// at the database file inside the effective cache directory.
func defaultConfig(cacheDir string) (*StructuredConfig, error) {
	if cacheDir == "" {
		var err error
		if cacheDir, err = DefaultCacheDir(); err != nil {
			return nil, err
		}
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			CacheDir: cacheDir,
			DB: DB{
				DSN: filepath.Join(cacheDir, DefaultDBFileName),
			},
		},
		Logging: Logging{
			Level: DefaultLogLevel,
		},
	}, nil
}

// DefaultCacheDir returns <user cache dir>/tabpfn.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("error resolving user cache dir: %w", err)
	}

	return filepath.Join(base, DefaultCacheDirName), nil
}
