// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the lending API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// CookieFile is the file the token cookie is persisted in.
	CookieFile string
}

// ClientConfig is the top-level lendctl configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	// LogFile receives client logs; empty discards them.
	LogFile string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetClientConfig builds a client-specific config view from defaults,
// environment variables and the JSON file named by CONFIG. Command-line
// flags are owned by the cobra commands and applied on top by the caller.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			CookieFile:     cfg.Adapter.CookieFile,
		},
		LogFile:  cfg.Adapter.LogFile,
		LogLevel: cfg.App.LogLevel,
	}

	return clientCfg, clientCfg.validate()
}

// Validate reports whether the client configuration is usable. Callers
// that override fields after [GetClientConfig] re-check with it.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
