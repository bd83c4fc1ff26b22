// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered on the default registry through promauto and served by
promhttp at /metrics.

# Available Metrics

HTTP Metrics:
  - emkulima_api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - emkulima_api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - emkulima_api_active_requests: In-flight requests (gauge)

Advisory Metrics:
  - emkulima_advisory_requests_total: Advice requests (counter)
    Labels: operation (advise, rank, compare), outcome (ok, cached, error)
  - emkulima_advisory_duration_seconds: Time to build a bundle (histogram)
  - emkulima_strategy_selections_total: Arbitration outcomes (counter)
    Labels: strategy
  - emkulima_arbitration_confidence: Arbitration margin in points (histogram)
  - emkulima_crops_scored_total: Crop evaluations (counter)
    Labels: strategy

Cache Metrics:
  - emkulima_memo_cache_hits_total, emkulima_memo_cache_misses_total (counters)
  - emkulima_memo_cache_entries: Current memoized bundles (gauge)
  - emkulima_cache_warm_runs_total: Warmer passes (counter)
    Labels: outcome

Reference Data Metrics:
  - emkulima_reference_entries: Loaded reference rows (gauge)
    Labels: table (crops, regions, subregions, markets)

# Usage Example

	start := time.Now()
	bundle, err := svc.Advise(ctx, req)
	metrics.RecordAdvisory("advise", time.Since(start), err)

# Thread Safety

All collectors are safe for concurrent use.
*/
package metrics
