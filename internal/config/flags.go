// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server's command-line flags from args.
//
// Flags:
//
//	-a               HTTP server address in format [host]:port
//	-grpc-address    gRPC server address in format [host]:port
//	-d               database DSN
//	-c / -config     JSON config file path
//	-token-sign-key  token signing key
//	-token-issuer    token issuer name
//	-token-duration  token lifetime (e.g. "8760h")
//	-request-timeout request timeout (e.g. "30s")
//	-env             development | production
//	-auth-guard      strict | permissive
//	-update-book-auth required | none
//	-log-level       zerolog level
//	-amqp-url        AMQP broker URL
//	-origins         comma separated CORS origins
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var environment string
	var authGuardMode string
	var updateBookAuth string
	var logLevel string
	var amqpURL string
	var origins string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 8760h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&environment, "env", "", "Environment: development or production")
	fs.StringVar(&authGuardMode, "auth-guard", "", "Auth guard mode: strict or permissive")
	fs.StringVar(&updateBookAuth, "update-book-auth", "", "Book update route auth: required or none")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&amqpURL, "amqp-url", "", "AMQP broker URL")
	fs.StringVar(&origins, "origins", "", "Comma separated CORS origins")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var allowedOrigins []string
	if origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			Environment:    environment,
			AuthGuardMode:  authGuardMode,
			UpdateBookAuth: updateBookAuth,
			LogLevel:       logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: allowedOrigins,
		},
		Events: Events{
			AMQPURL: amqpURL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a host:port string for a NetAddress, or an empty string
// when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port. An empty host means all
// interfaces; any other host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
