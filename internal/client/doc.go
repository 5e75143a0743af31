// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements lendctl, the command-line client of the lending
// server.
//
// Commands are built with cobra and talk to the server through an
// [adapter.ServerAdapter]. The token cookie received at login is kept in a
// local file so that later invocations stay authenticated.
package client
