// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-book-lending/internal/adapter"
	"github.com/MKhiriev/go-book-lending/internal/config"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line and returns when the command is done.
	Run() error
}

// AdapterFactory builds the server adapter once flags have been applied to
// the configuration.
type AdapterFactory func(cfg config.ClientAdapter) (adapter.ServerAdapter, error)
