// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the lending server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as CORS, the cookie auth guard, request
// tracing, access logging and request metrics are handled in this package
// before requests are delegated to the service layer.
package http
