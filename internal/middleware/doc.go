// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: UUID request tracking, propagated to the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation

Both are written as func(http.HandlerFunc) http.HandlerFunc and adapted to
chi's r.Use by the api package:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Request ID:

An incoming X-Request-ID header is reused when it is a sane token; otherwise
a UUID v4 is generated. The ID is echoed in the response header and stored
in the request context, where logging.Ctx and the API envelope pick it up.

	func handler(w http.ResponseWriter, r *http.Request) {
	    id := middleware.GetRequestID(r.Context())
	    logging.Ctx(r.Context()).Info().Msg("advising")
	}

Metrics:

The endpoint label is the chi route pattern (for example
/api/v1/crops/{cropID}/irrigation) rather than the raw path, so label
cardinality stays bounded by the route table. Requests that never reach a
route are labelled "unmatched".

See Also:

  - internal/api: the router that installs this middleware
  - internal/metrics: Prometheus collector definitions
*/
package middleware
