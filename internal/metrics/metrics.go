// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "emkulima"

// Outcome labels.
const (
	OutcomeOK     = "ok"
	OutcomeCached = "cached"
	OutcomeError  = "error"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_active_requests",
			Help:      "Current number of active API requests",
		},
	)

	// Advisory Metrics
	AdvisoryRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advisory_requests_total",
			Help:      "Total number of advisory requests by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	AdvisoryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "advisory_duration_seconds",
			Help:      "Time to produce advice in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"operation"},
	)

	StrategySelections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "strategy_selections_total",
			Help:      "Total number of arbitration decisions by selected strategy",
		},
		[]string{"strategy"},
	)

	ArbitrationConfidence = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "arbitration_confidence",
			Help:      "Margin between strategy totals in percentage points",
			Buckets:   []float64{0, 5, 10, 15, 20, 25, 30, 40},
		},
	)

	CropsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "crops_scored_total",
			Help:      "Total number of crop suitability evaluations by strategy",
		},
		[]string{"strategy"},
	)

	// Memo Cache Metrics
	MemoCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memo_cache_hits_total",
			Help:      "Total number of memoized bundle hits",
		},
	)

	MemoCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "memo_cache_misses_total",
			Help:      "Total number of memoized bundle misses",
		},
	)

	MemoCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "memo_cache_entries",
			Help:      "Current number of memoized bundles",
		},
	)

	CacheWarmRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_warm_runs_total",
			Help:      "Total number of cache warmer passes by outcome",
		},
		[]string{"outcome"},
	)

	// Reference Data Metrics
	ReferenceEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reference_entries",
			Help:      "Number of loaded reference data entries by table",
		},
		[]string{"table"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordAdvisory records one advisory operation.
func RecordAdvisory(operation string, duration time.Duration, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	AdvisoryRequests.WithLabelValues(operation, outcome).Inc()
	AdvisoryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordAdvisoryCached records an advisory request served from the memo cache.
func RecordAdvisoryCached(operation string) {
	AdvisoryRequests.WithLabelValues(operation, OutcomeCached).Inc()
	MemoCacheHits.Inc()
}

// RecordMemoMiss records a memo cache miss.
func RecordMemoMiss() {
	MemoCacheMisses.Inc()
}

// SetMemoEntries sets the memo cache size gauge.
func SetMemoEntries(n int) {
	MemoCacheEntries.Set(float64(n))
}

// RecordArbitration records which strategy won and by how much.
func RecordArbitration(strategy string, confidence float64) {
	StrategySelections.WithLabelValues(strategy).Inc()
	ArbitrationConfidence.Observe(confidence)
}

// RecordCropsScored adds n crop evaluations for a strategy.
func RecordCropsScored(strategy string, n int) {
	CropsScored.WithLabelValues(strategy).Add(float64(n))
}

// RecordWarmRun records a cache warmer pass.
func RecordWarmRun(err error) {
	if err != nil {
		CacheWarmRuns.WithLabelValues(OutcomeError).Inc()
		return
	}
	CacheWarmRuns.WithLabelValues(OutcomeOK).Inc()
}

// SetReferenceEntries publishes reference table sizes.
func SetReferenceEntries(crops, regions, subregions, markets int) {
	ReferenceEntries.WithLabelValues("crops").Set(float64(crops))
	ReferenceEntries.WithLabelValues("regions").Set(float64(regions))
	ReferenceEntries.WithLabelValues("subregions").Set(float64(subregions))
	ReferenceEntries.WithLabelValues("markets").Set(float64(markets))
}
