// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

/*
Package main is the entry point for the e-Mkulima advisory server.

The server loads the crop, location and market reference tables, builds the
advisory service and exposes it over a JSON REST API under /api/v1.

# Application Architecture

Long-running components run under a Suture v4 supervision tree:

	RootSupervisor ("emkulima")
	├── AdvisorySupervisor ("advisory-layer")
	│   └── MemoWarmer ("memo-warmer", optional)
	└── APISupervisor ("api-layer")
	    └── HTTPServer ("http-server")

The warmer pre-computes the default bundle of every region and subregion so
first requests are served from the memo cache. It is skipped when
memoization is off.

# Configuration

Configuration is loaded via Koanf v2 (highest priority wins):
  - Environment variables
  - Config file (CONFIG_PATH, ./config.yaml or /etc/emkulima/config.yaml)
  - Built-in defaults

Common variables:

	HTTP_PORT=8080             listen port
	LOG_LEVEL=info             trace, debug, info, warn or error
	LOG_FORMAT=json            json or console
	DATA_DIR=                  reference YAML directory (empty = embedded tables)
	CACHE_ENABLED=true         memoize advice bundles
	WARMER_ENABLED=true        pre-compute bundles on startup and hourly
	CORS_ORIGINS=*             comma separated allowed origins

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests for SHUTDOWN_TIMEOUT.

# Example Usage

	export LOG_FORMAT=console
	./emkulima-server
	curl 'http://localhost:8080/api/v1/advice?region=Gezira&farm_size=medium'
*/
package main
