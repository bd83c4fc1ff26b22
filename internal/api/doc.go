// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

/*
Package api provides the HTTP REST API for the advisory engine.

Key Components:

  - Router: chi route table and middleware stack
  - Handler: request handlers over an advisory.Service
  - ResponseWriter: the standard JSON envelope
  - ChiMiddleware: CORS and rate limiting factories

Endpoints (all under /api/v1):

	GET  /health/live                     liveness probe
	GET  /health/ready                    readiness probe (reference data loaded)
	GET  /regions                         regions with their subregions
	GET  /regions/{region}                one region
	GET  /regions/{region}/profile        resolved location profile and indices
	GET  /crops                           crop reference table
	GET  /crops/{cropID}                  one crop
	GET  /crops/{cropID}/irrigation       irrigation plan at ?region=&subregion=
	GET  /crops/{cropID}/fertilizer       fertilizer plan at ?region=&subregion=
	GET  /crops/{cropID}/market           market analysis at ?region=&subregion=
	GET  /rankings                        arbitrated crop ranking
	GET  /rankings/compare                both strategies side by side
	GET  /advice                          full advice bundle (query parameters)
	POST /advice                          full advice bundle (JSON body)
	GET  /markets/compare                 market analyses, most profitable first

Prometheus metrics are served at /metrics.

Farm queries share the parameters region (required), subregion, farm_size
and top_n. POST /advice takes the same fields as a JSON object.

Response Format:

Every endpoint except /metrics answers with the envelope:

	{
	    "success": true,
	    "data": { ... },
	    "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 1}
	}

Errors carry a machine-readable code:

	{
	    "success": false,
	    "error": {"code": "UNKNOWN_CROP", "message": "...", "request_id": "..."}
	}

Codes: BAD_REQUEST, VALIDATION_ERROR, NOT_FOUND, UNKNOWN_CROP,
TOO_MANY_REQUESTS, SERVICE_UNAVAILABLE, INTERNAL_ERROR.

Middleware Stack:

	RequestID -> RealIP -> Recoverer -> CORS
	    /api/v1/health: RateLimitHealth -> SecurityHeaders
	    /api/v1:        RateLimit -> SecurityHeaders -> Prometheus -> Compress

Thread Safety:

Handlers hold no per-request state; the advisory service is safe for
concurrent use.
*/
package api
