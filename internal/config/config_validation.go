// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// DSN schemes understood by the store package.
var knownDSNPrefixes = []string{"postgres://", "postgresql://", "sqlite://", "file:", "memory://"}

// validate checks that the final merged [StructuredConfig] can start a
// server.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	if app.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if app.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	switch app.Environment {
	case EnvironmentDevelopment, EnvironmentProduction:
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, app.Environment)
	}

	switch app.AuthGuardMode {
	case AuthGuardStrict, AuthGuardPermissive:
	default:
		return fmt.Errorf("%w: unknown auth guard mode %q", ErrInvalidAppConfigs, app.AuthGuardMode)
	}

	switch app.UpdateBookAuth {
	case UpdateBookAuthRequired, UpdateBookAuthNone:
	default:
		return fmt.Errorf("%w: unknown update book auth %q", ErrInvalidAppConfigs, app.UpdateBookAuth)
	}

	if !hasKnownScheme(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported DSN %q", ErrInvalidStorageConfigs, redactDSN(cfg.Storage.DB.DSN))
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return fmt.Errorf("%w: no listen address", ErrInvalidServerConfigs)
	}

	if cfg.Events.AMQPURL != "" && cfg.Events.Exchange == "" {
		return fmt.Errorf("%w: exchange is required", ErrInvalidEventsConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.CookieFile == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func hasKnownScheme(dsn string) bool {
	for _, prefix := range knownDSNPrefixes {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}

	return false
}

// redactDSN keeps only the scheme of dsn for error messages.
func redactDSN(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i+3] + "..."
	}
	if dsn == "" {
		return ""
	}

	return "..."
}
