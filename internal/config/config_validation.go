// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every consumer.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RetryCount < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.CacheDir == "" || cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	if u, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil || u.Host == "" {
		return fmt.Errorf("%w: bad service URL %q", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	if cfg.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLoggingConfigs, err)
		}
	}

	return nil
}
