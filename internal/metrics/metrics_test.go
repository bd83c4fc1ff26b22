// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package metrics

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/advice", "200"))

	RecordAPIRequest("GET", "/api/v1/advice", "200", 15*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/advice", "200", 25*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/advice", "200"))
	if after-before != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", after-before)
	}
}

// TestTrackActiveRequest tests in-flight gauge tracking
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("active requests delta = %v, want 2", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordAdvisory(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		err     error
		outcome string
	}{
		{"success", "advise", nil, OutcomeOK},
		{"failure", "rank", errors.New("unknown crop"), OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := AdvisoryRequests.WithLabelValues(tt.op, tt.outcome)
			before := testutil.ToFloat64(c)

			RecordAdvisory(tt.op, time.Millisecond, tt.err)

			if got := testutil.ToFloat64(c) - before; got != 1 {
				t.Errorf("advisory_requests_total{%s,%s} delta = %v, want 1", tt.op, tt.outcome, got)
			}
		})
	}
}

func TestRecordAdvisoryCached(t *testing.T) {
	hits := testutil.ToFloat64(MemoCacheHits)
	cached := testutil.ToFloat64(AdvisoryRequests.WithLabelValues("advise", OutcomeCached))

	RecordAdvisoryCached("advise")

	if got := testutil.ToFloat64(MemoCacheHits) - hits; got != 1 {
		t.Errorf("memo hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(AdvisoryRequests.WithLabelValues("advise", OutcomeCached)) - cached; got != 1 {
		t.Errorf("cached requests delta = %v, want 1", got)
	}
}

func TestMemoGauges(t *testing.T) {
	misses := testutil.ToFloat64(MemoCacheMisses)
	RecordMemoMiss()
	if got := testutil.ToFloat64(MemoCacheMisses) - misses; got != 1 {
		t.Errorf("memo misses delta = %v, want 1", got)
	}

	SetMemoEntries(42)
	if got := testutil.ToFloat64(MemoCacheEntries); got != 42 {
		t.Errorf("memo entries = %v, want 42", got)
	}
}

func TestRecordArbitration(t *testing.T) {
	before := testutil.ToFloat64(StrategySelections.WithLabelValues("rule_cascade"))

	RecordArbitration("rule_cascade", 15)

	if got := testutil.ToFloat64(StrategySelections.WithLabelValues("rule_cascade")) - before; got != 1 {
		t.Errorf("strategy selections delta = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(ArbitrationConfidence); n != 1 {
		t.Errorf("confidence collectors = %d, want 1", n)
	}
}

func TestRecordCropsScored(t *testing.T) {
	before := testutil.ToFloat64(CropsScored.WithLabelValues("weighted_sum"))
	RecordCropsScored("weighted_sum", 12)
	if got := testutil.ToFloat64(CropsScored.WithLabelValues("weighted_sum")) - before; got != 12 {
		t.Errorf("crops scored delta = %v, want 12", got)
	}
}

func TestRecordWarmRun(t *testing.T) {
	ok := testutil.ToFloat64(CacheWarmRuns.WithLabelValues(OutcomeOK))
	failed := testutil.ToFloat64(CacheWarmRuns.WithLabelValues(OutcomeError))

	RecordWarmRun(nil)
	RecordWarmRun(errors.New("context canceled"))

	if got := testutil.ToFloat64(CacheWarmRuns.WithLabelValues(OutcomeOK)) - ok; got != 1 {
		t.Errorf("ok runs delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheWarmRuns.WithLabelValues(OutcomeError)) - failed; got != 1 {
		t.Errorf("error runs delta = %v, want 1", got)
	}
}

func TestSetReferenceEntries(t *testing.T) {
	SetReferenceEntries(12, 12, 13, 12)

	expected := `
# HELP emkulima_reference_entries Number of loaded reference data entries by table
# TYPE emkulima_reference_entries gauge
emkulima_reference_entries{table="crops"} 12
emkulima_reference_entries{table="markets"} 12
emkulima_reference_entries{table="regions"} 12
emkulima_reference_entries{table="subregions"} 13
`
	if err := testutil.CollectAndCompare(ReferenceEntries, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected collector output: %v", err)
	}
}

// TestMetricsRegistered verifies every collector is registered on the default registry
func TestMetricsRegistered(t *testing.T) {
	collectors := []prometheus.Collector{
		APIRequestsTotal, APIRequestDuration, APIActiveRequests,
		AdvisoryRequests, AdvisoryDuration, StrategySelections, ArbitrationConfidence, CropsScored,
		MemoCacheHits, MemoCacheMisses, MemoCacheEntries, CacheWarmRuns, ReferenceEntries,
	}
	for _, c := range collectors {
		err := prometheus.Register(c)
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			t.Errorf("Register(%T) error = %v, want AlreadyRegisteredError", c, err)
		}
	}
}

// TestConcurrentRecording checks collectors under concurrent use
func TestConcurrentRecording(t *testing.T) {
	before := testutil.ToFloat64(CropsScored.WithLabelValues("concurrent"))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				RecordCropsScored("concurrent", 1)
			}
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(CropsScored.WithLabelValues("concurrent")) - before; got != 1000 {
		t.Errorf("concurrent delta = %v, want 1000", got)
	}
}
