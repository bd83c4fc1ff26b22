// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/Romeombugua/e-mkulima/internal/advisory"
	"github.com/Romeombugua/e-mkulima/internal/agronomy"
	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/market"
	"github.com/Romeombugua/e-mkulima/internal/recommend"
	"github.com/Romeombugua/e-mkulima/internal/reference"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"CROP", "SCORE"}, [][]string{
		{"Sorghum", "81%"},
		{"Okra", "7%"},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)

	// Column two starts at the same visible offset on every row
	col := strings.Index(lines[0], "SCORE")
	assert.Equal(t, col, strings.Index(lines[2], "81%"))
	assert.Equal(t, col, strings.Index(lines[3], "7%"))
	assert.Equal(t, lipgloss.Width(lines[0]), lipgloss.Width("CROP     SCORE"))
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
	assert.Contains(t, RenderTable([]string{"A"}, nil), "A")
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0%"},
		{0.815, "82%"},
		{1, "100%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percent(tt.in))
	}
}

func TestFormatRanking(t *testing.T) {
	r := &advisory.Ranking{
		Profile:       &location.Profile{Region: "Gezira", Subregion: "Irrigated Plains"},
		FarmSize:      "medium",
		Justification: "weighted_sum: complex_soil_profile",
		Decision:      recommend.ArbitrationDecision{Confidence: 12.5},
		Ranked: []recommend.SuitabilityResult{
			{CropID: "cotton", CropName: "Cotton", Score: 0.9, Breakdown: map[string]float64{"soil": 1, "water": 0.5, "ph": 0.9, "temperature": 0.2}},
			{CropID: "okra", CropName: "Okra", Score: 0.4, Yield: recommend.YieldHigh, TopFactors: []recommend.Factor{{Name: "climate"}}},
		},
	}

	out := FormatRanking(r)
	assert.Contains(t, out, "Gezira / Irrigated Plains")
	assert.Contains(t, out, "weighted_sum: complex_soil_profile")
	assert.Contains(t, out, "12.5")
	assert.Contains(t, out, "Cotton")
	assert.Contains(t, out, "soil, ph, water")
	assert.NotContains(t, out, "temperature")
	assert.Contains(t, out, "climate")
	assert.Contains(t, out, "high")
}

func TestFormatWarnings(t *testing.T) {
	out := FormatWarnings([]advisory.Warning{
		{Level: advisory.WarningWatchOut, Risk: "Extreme heat"},
		{Level: advisory.WarningBeAware, Risk: "Sand storms"},
	})
	assert.Contains(t, out, "watch_out")
	assert.Contains(t, out, "Extreme heat")
	assert.Contains(t, out, "be_aware")
	assert.Contains(t, out, "Sand storms")
}

func TestFormatIrrigation(t *testing.T) {
	p := &agronomy.IrrigationPlan{
		CropID:   "sorghum",
		Water:    agronomy.WaterBudget{NeedMM: 500, RainfallMM: 200, DeficitMM: 300, DeficitPercent: 60},
		Schedule: agronomy.Schedule{Frequency: agronomy.FrequencyHigh, Interval: &agronomy.Span{From: 3, To: 5}},
		Method:   agronomy.MethodChoice{Method: agronomy.MethodDrip, Efficiency: agronomy.Span{From: 85, To: 95}},
		Stages:   []agronomy.Stage{{Stage: "flowering", Days: agronomy.Span{From: 60, To: 80}, Priority: "critical"}},
	}

	out := FormatIrrigation(p)
	assert.Contains(t, out, "300 mm (60%)")
	assert.Contains(t, out, "every 3-5 days")
	assert.Contains(t, out, "drip (85-95% efficient)")
	assert.Contains(t, out, "flowering")
}

func TestFormatFertilizer_NoGaps(t *testing.T) {
	out := FormatFertilizer(&agronomy.FertilizerPlan{CropID: "millet"})
	assert.Contains(t, out, "No nutrient gaps")
}

func TestFormatMarketComparison(t *testing.T) {
	out := FormatMarketComparison([]*market.Analysis{
		{CropName: "Sorghum", Profitability: market.Profitability{Score: 0.8, Rating: "excellent"}, Risk: market.Risk{Rating: "low"}},
		{CropName: "Okra", Profitability: market.Profitability{Score: 0.3, Rating: "poor"}, Risk: market.Risk{Rating: "high"}},
	})
	assert.Less(t, strings.Index(out, "Sorghum"), strings.Index(out, "Okra"))
	assert.Contains(t, out, "0.80")
}

func TestFormatProfile_Partial(t *testing.T) {
	p := &location.Profile{
		Region:    "Nowhere",
		Subregion: "Dust",
		Climate:   &reference.ClimateProfile{AvgRainfall: 120, Risks: []string{"Severe drought"}},
	}

	out := FormatProfile(p)
	assert.Contains(t, out, "Nowhere / Dust")
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, "120 mm")
	assert.Contains(t, out, "Severe drought")
}

func TestFormatCrop(t *testing.T) {
	out := FormatCrop(&reference.CropRequirement{
		ID:          "sesame",
		Name:        "Sesame",
		PH:          reference.Range{Min: 5.5, Max: 8},
		GrowthDays:  100,
		MinFarmSize: "small",
	})
	assert.Contains(t, out, "Sesame (sesame)")
	assert.Contains(t, out, "5.5-8.0")
	assert.Contains(t, out, "100 days")
	assert.Contains(t, out, "small")
}
