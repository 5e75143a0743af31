// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-book-lending/internal/adapter"
	"github.com/MKhiriev/go-book-lending/internal/config"
	"github.com/MKhiriev/go-book-lending/internal/logger"
)

// App is the lendctl command tree bound to one configuration.
type App struct {
	cfg        *config.ClientConfig
	newAdapter AdapterFactory

	// adapter and tokens are set by the root command before any
	// subcommand runs.
	adapter adapter.ServerAdapter
	tokens  tokenFile

	root   *cobra.Command
	out    io.Writer
	logger *logger.Logger
}

// NewApp builds the command tree. Flags given on the command line override
// cfg before the adapter is created.
func NewApp(cfg *config.ClientConfig, newAdapter AdapterFactory, logger *logger.Logger) *App {
	a := &App{
		cfg:        cfg,
		newAdapter: newAdapter,
		out:        os.Stdout,
		logger:     logger,
	}
	a.root = a.rootCommand()
	return a
}

// Run implements [Client] with the process arguments.
func (a *App) Run() error {
	return a.root.Execute()
}

// SetArgs replaces the process arguments.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects command output and cobra's own messages.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
	a.root.SetOut(w)
	a.root.SetErr(w)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "lendctl",
		Short:         "Command-line client of the book lending server",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.connect()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfg.Adapter.HTTPAddress, "server", "s", a.cfg.Adapter.HTTPAddress, "lending server base URL")
	flags.DurationVar(&a.cfg.Adapter.RequestTimeout, "timeout", a.cfg.Adapter.RequestTimeout, "request timeout")
	flags.StringVar(&a.cfg.Adapter.CookieFile, "cookie-file", a.cfg.Adapter.CookieFile, "file that keeps the token cookie")

	root.AddCommand(
		a.loginCommand(),
		a.logoutCommand(),
		a.booksCommand(),
		a.bookCommand(),
		a.addCommand(),
		a.updateCommand(),
		a.borrowCommand(),
		a.returnCommand(),
		a.borrowedCommand(),
		a.versionCommand(),
	)

	return root
}

// connect validates the effective configuration, creates the adapter and
// restores a stored token.
func (a *App) connect() error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	serverAdapter, err := a.newAdapter(a.cfg.Adapter)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}
	a.adapter = serverAdapter
	a.tokens = tokenFile{path: a.cfg.Adapter.CookieFile}

	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token != "" {
		a.adapter.SetToken(token)
		a.logger.Debug().Str("func", "*App.connect").Msg("token restored")
	}

	return nil
}

// context bounds one command by the configured request timeout.
func (a *App) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = a.logger.WithContext(ctx)

	if a.cfg.Adapter.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.cfg.Adapter.RequestTimeout+time.Second)
}
