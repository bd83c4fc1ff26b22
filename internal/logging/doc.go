// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

/*
Package logging provides centralized zerolog-based logging for e-Mkulima.

# Quick Start

	logging.Init(logging.Config{Level: "info", Format: "json"})

	logging.Info().Str("region", "Gezira").Msg("Advice requested")
	logging.Ctx(ctx).Warn().Err(err).Msg("Ranking failed")

Components receive a zerolog.Logger by value and derive a child logger:

	logger = logger.With().Str("component", "advisory").Logger()

# Configuration

Environment Variables (read by internal/config):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file and line (default: false)

# Request Correlation

The HTTP request-id middleware stores the request ID in the context with
ContextWithRequestID. Ctx adds request_id and correlation_id fields to every
event logged through it. The cache warmer tags each pass with a correlation ID.

# slog Bridge

SlogHandler implements slog.Handler on top of zerolog so libraries that speak
log/slog (sutureslog for the supervisor tree) share the same output.
*/
package logging
