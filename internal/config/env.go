// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

const (
	legacyDBHost = "localhost:5432"
	legacyDBName = "booksDB"
)

// legacyEnv holds the variable names deployments of the lending API have
// always used.
type legacyEnv struct {
	Port      string `env:"PORT"`
	SecretKey string `env:"SECRET_KEY"`
	NodeEnv   string `env:"NODE_ENV"`
	DBUser    string `env:"DB_USER"`
	DBPass    string `env:"DB_PASS"`
	DBHost    string `env:"DB_HOST"`
	DBName    string `env:"DB_NAME"`
}

// parseLegacyEnv maps the legacy variables onto a [StructuredConfig].
// A Postgres DSN is derived only when DB_USER is set.
func parseLegacyEnv() *StructuredConfig {
	var legacy legacyEnv
	if err := env.Parse(&legacy); err != nil {
		return &StructuredConfig{}
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey: legacy.SecretKey,
		},
	}

	// Anything but "production" has always meant development.
	switch legacy.NodeEnv {
	case "":
	case EnvironmentProduction:
		cfg.App.Environment = EnvironmentProduction
	default:
		cfg.App.Environment = EnvironmentDevelopment
	}

	if legacy.Port != "" {
		cfg.Server.HTTPAddress = ":" + legacy.Port
	}

	if legacy.DBUser != "" {
		if legacy.DBHost == "" {
			legacy.DBHost = legacyDBHost
		}
		if legacy.DBName == "" {
			legacy.DBName = legacyDBName
		}
		dsn := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(legacy.DBUser, legacy.DBPass),
			Host:     legacy.DBHost,
			Path:     "/" + legacy.DBName,
			RawQuery: "sslmode=disable",
		}
		cfg.Storage.DB.DSN = dsn.String()
	}

	return cfg
}
