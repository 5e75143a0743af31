// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-book-lending/internal/adapter"
	"github.com/MKhiriev/go-book-lending/internal/client"
	"github.com/MKhiriev/go-book-lending/internal/config"
	"github.com/MKhiriev/go-book-lending/internal/logger"
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("lendctl", cfg.LogLevel, cfg.LogFile)

	newAdapter := func(adapterCfg config.ClientAdapter) (adapter.ServerAdapter, error) {
		return adapter.NewHTTPServerAdapter(adapterCfg, log)
	}

	if err = client.NewApp(cfg, newAdapter, log).Run(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
