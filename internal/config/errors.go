// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. Returned errors wrap one of these with details.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (missing sign key, unknown environment or guard mode).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or an unknown scheme.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that no transport would be started.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidEventsConfigs indicates a broker URL without an exchange.
	ErrInvalidEventsConfigs = errors.New("invalid events configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (missing server address, timeout or cookie file).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
