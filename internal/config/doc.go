// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the lending server and the lendctl client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Legacy environment variables (PORT, SECRET_KEY, NODE_ENV, DB_USER, DB_PASS)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// Behaviour switches are strings rather than booleans so that a later
// source can turn them off.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
