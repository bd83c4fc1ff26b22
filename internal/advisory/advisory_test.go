// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package advisory

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/metrics"
	"github.com/Romeombugua/e-mkulima/internal/recommend"
	"github.com/Romeombugua/e-mkulima/internal/reference"
	"github.com/Romeombugua/e-mkulima/internal/validation"
)

func newTestService(t *testing.T, mutate func(*Config)) *Service {
	t.Helper()

	catalog, err := reference.LoadEmbedded()
	require.NoError(t, err)

	engine, err := NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)

	cfg := DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}

	svc, err := NewService(catalog, engine, cfg, zerolog.Nop())
	require.NoError(t, err)
	return svc
}

func cropIDs(results []recommend.SuitabilityResult) []string {
	out := make([]string, len(results))
	for i := range results {
		out[i] = results[i].CropID
	}
	return out
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero max top-n", func(c *Config) { c.MaxTopN = 0 }, true},
		{"default above max", func(c *Config) { c.DefaultTopN = 60 }, true},
		{"negative alternates", func(c *Config) { c.Alternates = -1 }, true},
		{"no alternates", func(c *Config) { c.Alternates = 0 }, false},
		{"bad farm size", func(c *Config) { c.DefaultFarmSize = "huge" }, true},
		{"zero capacity while memoizing", func(c *Config) { c.MemoCapacity = 0 }, true},
		{"zero capacity without memo", func(c *Config) { c.Memoize = false; c.MemoCapacity = 0 }, false},
		{"negative ttl", func(c *Config) { c.MemoTTL = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewService_Errors(t *testing.T) {
	catalog, err := reference.LoadEmbedded()
	require.NoError(t, err)
	engine, err := NewEngine(nil, zerolog.Nop())
	require.NoError(t, err)

	_, err = NewService(nil, engine, nil, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewService(catalog, nil, nil, zerolog.Nop())
	assert.Error(t, err)

	_, err = NewService(catalog, engine, &Config{}, zerolog.Nop())
	assert.ErrorContains(t, err, "invalid config")
}

func TestNewEngine_RegistersBothStrategies(t *testing.T) {
	engine, err := NewEngine(nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t,
		[]recommend.StrategyID{recommend.StrategyWeightedSum, recommend.StrategyRuleCascade},
		engine.Strategies())
}

func TestAdvise_Bundle(t *testing.T) {
	svc := newTestService(t, nil)

	b, err := svc.Advise(context.Background(), Request{Region: "Khartoum", FarmSize: "medium"})
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.False(t, b.GeneratedAt.IsZero())
	assert.Equal(t, "Khartoum", b.Profile.Region)
	assert.Equal(t, "Nile Valley", b.Profile.Subregion)
	assert.Equal(t, "medium", b.FarmSize)
	assert.Equal(t, b.Decision.Justification(), b.Justification)
	assert.Len(t, b.Ranked, 5)

	for i := 1; i < len(b.Ranked); i++ {
		assert.GreaterOrEqual(t, b.Ranked[i-1].Score, b.Ranked[i].Score, "ranking must be non-increasing")
	}
	for _, r := range b.Ranked {
		assert.Equal(t, b.Decision.Strategy, r.Strategy)
	}

	require.NotNil(t, b.Top)
	top := b.Ranked[0].CropID
	assert.Equal(t, top, b.Top.Suitability.CropID)
	assert.Equal(t, top, b.Top.Irrigation.CropID)
	assert.Equal(t, top, b.Top.Fertilizer.CropID)
	assert.Equal(t, top, b.Top.Market.CropID)

	require.Len(t, b.Alternates, 3)
	for i, alt := range b.Alternates {
		assert.Equal(t, b.Ranked[i+1].CropID, alt.CropID)
		assert.Equal(t, b.Ranked[i+1].Score, alt.Score)
		assert.NotEmpty(t, alt.MarketRating)
		assert.NotEmpty(t, alt.RiskRating)
	}

	assert.Equal(t, []Warning{
		{Level: WarningWatchOut, Risk: "Extreme heat"},
		{Level: WarningWatchOut, Risk: "Water scarcity"},
	}, b.Warnings)
}

func TestAdvise_Defaults(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	b, err := svc.Advise(ctx, Request{Region: "Gezira"})
	require.NoError(t, err)
	assert.Equal(t, "small", b.FarmSize)
	assert.Equal(t, "Irrigated Plains", b.Profile.Subregion)
	assert.Len(t, b.Ranked, 5)

	all, err := svc.Advise(ctx, Request{Region: "Gezira", TopN: 500})
	require.NoError(t, err)
	assert.Len(t, all.Ranked, svc.Catalog().CropCount())
}

func TestAdvise_AlternatesFromFullRanking(t *testing.T) {
	svc := newTestService(t, nil)

	b, err := svc.Advise(context.Background(), Request{Region: "Sennar", TopN: 1})
	require.NoError(t, err)
	assert.Len(t, b.Ranked, 1)
	assert.Len(t, b.Alternates, 3)
	assert.NotEqual(t, b.Top.Suitability.CropID, b.Alternates[0].CropID)
}

func TestAdvise_Memoized(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	cachedBefore := testutil.ToFloat64(metrics.AdvisoryRequests.WithLabelValues(opAdvise, metrics.OutcomeCached))

	first, err := svc.Advise(ctx, Request{Region: "Kassala", FarmSize: "large"})
	require.NoError(t, err)

	// Same farm by canonical names and spelling.
	second, err := svc.Advise(ctx, Request{Region: "kassala", Subregion: "Eastern Plains", FarmSize: "Large"})
	require.NoError(t, err)
	assert.Same(t, first, second)

	other, err := svc.Advise(ctx, Request{Region: "Kassala", FarmSize: "small"})
	require.NoError(t, err)
	assert.NotSame(t, first, other)

	stats := svc.MemoStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 2, stats.Size)
	assert.Equal(t, cachedBefore+1, testutil.ToFloat64(metrics.AdvisoryRequests.WithLabelValues(opAdvise, metrics.OutcomeCached)))

	svc.ClearMemo()
	assert.Equal(t, 0, svc.MemoStats().Size)
}

func TestAdviseCached(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	first, cached, err := svc.AdviseCached(ctx, Request{Region: "Sennar"})
	require.NoError(t, err)
	assert.False(t, cached)

	second, cached, err := svc.AdviseCached(ctx, Request{Region: "sennar"})
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Same(t, first, second)

	_, cached, err = svc.AdviseCached(ctx, Request{Region: "Sennar", FarmSize: "bogus"})
	require.Error(t, err)
	assert.False(t, cached)

	uncached := newTestService(t, func(c *Config) { c.Memoize = false })
	for i := 0; i < 2; i++ {
		_, cached, err := uncached.AdviseCached(ctx, Request{Region: "Sennar"})
		require.NoError(t, err)
		assert.False(t, cached, "call %d", i)
	}
}

func TestAdvise_MemoDisabled(t *testing.T) {
	svc := newTestService(t, func(c *Config) { c.Memoize = false })
	ctx := context.Background()

	first, err := svc.Advise(ctx, Request{Region: "Kassala"})
	require.NoError(t, err)
	second, err := svc.Advise(ctx, Request{Region: "Kassala"})
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.Decision, second.Decision)
	assert.Equal(t, cropIDs(first.Ranked), cropIDs(second.Ranked))
	assert.Zero(t, svc.MemoStats())
}

func TestAdvise_Validation(t *testing.T) {
	svc := newTestService(t, nil)

	tests := []struct {
		name  string
		req   Request
		field string
	}{
		{"missing region", Request{FarmSize: "small"}, "region"},
		{"bad farm size", Request{Region: "Gezira", FarmSize: "enormous"}, "farm_size"},
		{"negative top-n", Request{Region: "Gezira", TopN: -1}, "top_n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Advise(context.Background(), tt.req)
			require.Error(t, err)

			var verr *validation.RequestValidationError
			require.True(t, errors.As(err, &verr))
			require.NotEmpty(t, verr.Errors())
			assert.Equal(t, tt.field, verr.Errors()[0].Field())
		})
	}
}

func TestAdvise_UnknownRegion(t *testing.T) {
	svc := newTestService(t, nil)

	b, err := svc.Advise(context.Background(), Request{Region: "Atlantis"})
	require.NoError(t, err)

	assert.Nil(t, b.Profile.Soil)
	assert.Nil(t, b.Profile.Climate)
	assert.Equal(t, location.UnknownClimateRisk, b.Indices.ClimateRisk)
	assert.Empty(t, b.Warnings)
	require.NotNil(t, b.Top)
	assert.Nil(t, b.Top.Fertilizer.Gaps)
	assert.Len(t, b.Top.Fertilizer.Tips, 4)
}

func TestAdvise_NoCrops(t *testing.T) {
	catalog, err := reference.NewCatalog(nil, nil, nil, nil)
	require.NoError(t, err)
	engine, err := NewEngine(nil, zerolog.Nop())
	require.NoError(t, err)
	svc, err := NewService(catalog, engine, nil, zerolog.Nop())
	require.NoError(t, err)

	_, err = svc.Advise(context.Background(), Request{Region: "Gezira"})
	assert.ErrorIs(t, err, ErrNoCrops)
}

func TestRank_Deterministic(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	req := Request{Region: "North Darfur", FarmSize: "very_small", TopN: 12}

	a, err := svc.Rank(ctx, req)
	require.NoError(t, err)
	b, err := svc.Rank(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, a.Decision, b.Decision)
	assert.Equal(t, cropIDs(a.Ranked), cropIDs(b.Ranked))
	assert.Len(t, a.Ranked, 12)
	assert.Equal(t, "Semi-Desert", a.Profile.Subregion)
}

func TestCompareStrategies(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()
	req := Request{Region: "Blue Nile", FarmSize: "medium", TopN: 3}

	cmp, err := svc.CompareStrategies(ctx, req)
	require.NoError(t, err)
	require.Len(t, cmp.Rankings, 2)
	assert.Len(t, cmp.Rankings[recommend.StrategyWeightedSum], 3)
	assert.Len(t, cmp.Rankings[recommend.StrategyRuleCascade], 3)

	ranking, err := svc.Rank(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, ranking.Decision, cmp.Decision)
	assert.Equal(t, cropIDs(ranking.Ranked), cropIDs(cmp.Rankings[cmp.Decision.Strategy]))
}

func TestPlans(t *testing.T) {
	svc := newTestService(t, nil)

	irrigation, err := svc.IrrigationPlan("Khartoum", "", "sorghum")
	require.NoError(t, err)
	assert.Equal(t, "sorghum", irrigation.CropID)

	fertilizer, err := svc.FertilizerPlan("Khartoum", "", "wheat")
	require.NoError(t, err)
	assert.Equal(t, "wheat", fertilizer.CropID)
	assert.Len(t, fertilizer.Gaps, 3)

	analysis, err := svc.MarketAnalysis("Khartoum", "", "okra")
	require.NoError(t, err)
	assert.Equal(t, "okra", analysis.CropID)

	_, err = svc.IrrigationPlan("Khartoum", "", "banana")
	assert.ErrorIs(t, err, ErrUnknownCrop)
	_, err = svc.FertilizerPlan("Khartoum", "", "banana")
	assert.ErrorIs(t, err, ErrUnknownCrop)
	_, err = svc.MarketAnalysis("Khartoum", "", "banana")
	assert.ErrorIs(t, err, ErrUnknownCrop)
}

func TestCompareMarkets(t *testing.T) {
	svc := newTestService(t, nil)

	all, err := svc.CompareMarkets("Khartoum", "", nil)
	require.NoError(t, err)
	assert.Len(t, all, svc.Catalog().CropCount())
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Profitability.Score, all[i].Profitability.Score)
	}

	two, err := svc.CompareMarkets("Khartoum", "", []string{"okra", "sorghum"})
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, "sorghum", two[0].CropID)
	assert.Equal(t, "okra", two[1].CropID)

	_, err = svc.CompareMarkets("Khartoum", "", []string{"sorghum", "banana"})
	assert.ErrorIs(t, err, ErrUnknownCrop)
}

func TestWarm(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	paced := 0
	n, err := svc.Warm(ctx, func(context.Context) error {
		paced++
		return nil
	})
	require.NoError(t, err)

	want := len(svc.WarmTargets())
	assert.Equal(t, 12*5, want)
	assert.Equal(t, want, n)
	assert.Equal(t, want, paced)
	assert.Equal(t, want, svc.MemoStats().Size)

	_, err = svc.Advise(ctx, Request{Region: "Gedaref", FarmSize: "very_large"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), svc.MemoStats().Hits)
}

func TestWarm_Stops(t *testing.T) {
	svc := newTestService(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := svc.Warm(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)

	errPace := errors.New("paused")
	calls := 0
	n, err = svc.Warm(context.Background(), func(context.Context) error {
		calls++
		if calls > 2 {
			return errPace
		}
		return nil
	})
	assert.ErrorIs(t, err, errPace)
	assert.Equal(t, 2, n)

	off := newTestService(t, func(c *Config) { c.Memoize = false })
	n, err = off.Warm(context.Background(), nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestClimateWarnings(t *testing.T) {
	tests := []struct {
		name    string
		profile *location.Profile
		want    []Warning
	}{
		{"nil profile", nil, []Warning{}},
		{"no climate", &location.Profile{Region: "X"}, []Warning{}},
		{
			name: "mixed risks keep tag order",
			profile: &location.Profile{Climate: &reference.ClimateProfile{
				Risks: []string{"Sand storms", "Severe drought", "Extreme heat"},
			}},
			want: []Warning{
				{Level: WarningBeAware, Risk: "Sand storms"},
				{Level: WarningWatchOut, Risk: "Severe drought"},
				{Level: WarningWatchOut, Risk: "Extreme heat"},
			},
		},
		{
			name: "plain drought is not severe",
			profile: &location.Profile{Climate: &reference.ClimateProfile{
				Risks: []string{"Drought"},
			}},
			want: []Warning{{Level: WarningBeAware, Risk: "Drought"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClimateWarnings(tt.profile))
		})
	}
}
