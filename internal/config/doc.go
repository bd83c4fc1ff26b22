// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

/*
Package config provides centralized configuration management for e-Mkulima.

Configuration is layered with koanf v2:
 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, ./config.yaml, /etc/emkulima/config.yaml
 3. Environment variables (highest priority)

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development or production

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Security:
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Engine:
  - ENGINE_WORKERS: Goroutines used to score large crop sets (default: 4)
  - ENGINE_PARALLEL_THRESHOLD: Crop count at which scoring fans out (default: 64)
  - ENGINE_DEFAULT_TOP_N, ENGINE_MAX_TOP_N, ENGINE_ALTERNATES
  - ENGINE_COMPLEX_ZONES: Comma-separated zone names the arbitrator treats as complex

Cache and Warmer:
  - CACHE_ENABLED, CACHE_CAPACITY, CACHE_TTL
  - WARMER_ENABLED, WARMER_INTERVAL, WARMER_RATE (bundles per second)

Reference Data:
  - DATA_DIR: Directory holding crops.yaml, locations.yaml and markets.yaml;
    empty uses the embedded tables

# Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("invalid configuration")
	}
*/
package config
