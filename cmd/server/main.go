// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Romeombugua/e-mkulima/internal/api"
	"github.com/Romeombugua/e-mkulima/internal/config"
	"github.com/Romeombugua/e-mkulima/internal/logging"
	"github.com/Romeombugua/e-mkulima/internal/supervisor"
	"github.com/Romeombugua/e-mkulima/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Server exited with error")
		os.Exit(1)
	}
}

func run() error {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("data_dir", cfg.Data.Dir).
		Bool("memoize", cfg.Cache.Enabled).
		Bool("warmer", cfg.Warmer.Enabled).
		Msg("Starting e-Mkulima advisory server")

	service, err := initAdvisory(cfg, logging.WithComponent("advisory"))
	if err != nil {
		return err
	}

	router := api.NewRouter(api.NewHandler(service), api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logging.WithComponent("supervisor")), supervisor.TreeConfig{})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	// Advisory layer
	if warmer := initWarmer(cfg, service, logging.WithComponent("warmer")); warmer != nil {
		tree.AddAdvisoryService(warmer)
		logging.Info().Dur("interval", cfg.Warmer.Interval).Float64("rate", cfg.Warmer.Rate).Msg("Memo warmer added to supervisor tree")
	}

	// API layer
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Server stopped gracefully")
	return nil
}
