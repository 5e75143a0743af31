// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultHTTPAddress    = ":5001"
	defaultTokenIssuer    = "go-book-lending"
	defaultTokenDuration  = 365 * 24 * time.Hour
	defaultGreeting       = "A11 server is working"
	defaultRequestTimeout = 30 * time.Second
	defaultClientTimeout  = 10 * time.Second
	defaultExchange       = "lending"
	defaultCookieFile     = ".lendctl_token"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    defaultTokenIssuer,
			TokenDuration:  defaultTokenDuration,
			Environment:    EnvironmentDevelopment,
			AuthGuardMode:  AuthGuardStrict,
			UpdateBookAuth: UpdateBookAuthRequired,
			Greeting:       defaultGreeting,
			Version:        "dev",
			LogLevel:       "info",
		},
		Storage: Storage{
			DB: DB{DSN: "memory://"},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
			AllowedOrigins: []string{"*"},
		},
		Events: Events{
			Exchange: defaultExchange,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost" + defaultHTTPAddress,
			RequestTimeout: defaultClientTimeout,
			CookieFile:     defaultCookiePath(),
		},
	}
}

func defaultCookiePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultCookieFile
	}

	return filepath.Join(home, defaultCookieFile)
}
