// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package recommend

import (
	"reflect"
	"testing"

	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/reference"
)

func TestArbitrator_Decide(t *testing.T) {
	cat, err := reference.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	resolver := location.NewResolver(cat)

	terai := &location.Profile{
		Subregion: "Terai",
		Soil:      &reference.SoilProfile{Type: "Black Cotton", Drainage: "Moderate"},
		Climate:   &reference.ClimateProfile{AvgRainfall: 750, Risks: []string{"Dry spells"}},
	}
	stormy := &location.Profile{
		Subregion: "Delta",
		Soil:      &reference.SoilProfile{Type: "Sandy", Drainage: "Moderate"},
		Climate: &reference.ClimateProfile{
			AvgRainfall: 750,
			Risks:       []string{"Cyclones", "Heavy rainfall", "Extreme heat"},
		},
	}
	balanced := &location.Profile{
		Subregion: "Plain",
		Soil:      &reference.SoilProfile{Type: "Loam", Drainage: "Moderate"},
		Climate:   &reference.ClimateProfile{AvgRainfall: 750},
	}

	tests := []struct {
		name           string
		profile        *location.Profile
		wantStrategy   StrategyID
		wantWeighted   float64
		wantRules      float64
		wantConfidence float64
		wantReasons    []Reason
	}{
		{
			name:           "alluvial tie goes to rules",
			profile:        resolver.Resolve("Khartoum", ""),
			wantStrategy:   StrategyRuleCascade,
			wantWeighted:   0.95,
			wantRules:      0.95,
			wantConfidence: 0,
			wantReasons:    []Reason{ReasonExtremeWater},
		},
		{
			name:           "unknown region",
			profile:        resolver.Resolve("Atlantis", ""),
			wantStrategy:   StrategyRuleCascade,
			wantWeighted:   0.70,
			wantRules:      0.85,
			wantConfidence: 15,
			wantReasons:    []Reason{ReasonExtremeWater},
		},
		{
			name:           "semi desert risk at threshold is not high",
			profile:        resolver.Resolve("North Darfur", ""),
			wantStrategy:   StrategyRuleCascade,
			wantWeighted:   0.90,
			wantRules:      1.00,
			wantConfidence: 10,
			wantReasons:    []Reason{ReasonExtremeWater},
		},
		{
			name:           "complex soil and zone",
			profile:        terai,
			wantStrategy:   StrategyWeightedSum,
			wantWeighted:   1.05,
			wantRules:      0.85,
			wantConfidence: 20,
			wantReasons:    []Reason{ReasonComplexSoil, ReasonComplexZone},
		},
		{
			name:           "high risk",
			profile:        stormy,
			wantStrategy:   StrategyRuleCascade,
			wantWeighted:   0.90,
			wantRules:      1.00,
			wantConfidence: 10,
			wantReasons:    []Reason{ReasonHighClimateRisk},
		},
		{
			name:           "no trigger falls back",
			profile:        balanced,
			wantStrategy:   StrategyRuleCascade,
			wantWeighted:   0.95,
			wantRules:      0.95,
			wantConfidence: 0,
			wantReasons:    []Reason{ReasonOptimalRules},
		},
	}

	a := NewArbitrator(DefaultComplexZones)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := a.Decide(tt.profile)
			if d.Strategy != tt.wantStrategy {
				t.Errorf("Strategy = %q, want %q", d.Strategy, tt.wantStrategy)
			}
			if got := d.Totals[StrategyWeightedSum]; got != tt.wantWeighted {
				t.Errorf("Totals[weighted_sum] = %v, want %v", got, tt.wantWeighted)
			}
			if got := d.Totals[StrategyRuleCascade]; got != tt.wantRules {
				t.Errorf("Totals[rule_cascade] = %v, want %v", got, tt.wantRules)
			}
			if d.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", d.Confidence, tt.wantConfidence)
			}
			if !reflect.DeepEqual(d.Reasons, tt.wantReasons) {
				t.Errorf("Reasons = %v, want %v", d.Reasons, tt.wantReasons)
			}
		})
	}
}

func TestArbitrator_Deterministic(t *testing.T) {
	a := NewArbitrator(DefaultComplexZones)
	p := &location.Profile{
		Subregion: "Hill Zone",
		Soil:      &reference.SoilProfile{Type: "Alluvial", Drainage: "Good"},
		Climate:   &reference.ClimateProfile{AvgRainfall: 900, Risks: []string{"Floods"}},
	}

	first := a.Decide(p)
	for i := 0; i < 10; i++ {
		if got := a.Decide(p); !reflect.DeepEqual(got, first) {
			t.Fatalf("Decide() call %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestArbitrator_CustomZones(t *testing.T) {
	p := &location.Profile{Subregion: "Nuba Mountains"}

	if NewArbitrator(nil).complexZone(p) {
		t.Error("complexZone() = true with no configured zones")
	}
	if !NewArbitrator([]string{"nuba_mountains"}).complexZone(p) {
		t.Error("complexZone() = false for configured zone")
	}
}

func TestArbitrator_ComplexSoil(t *testing.T) {
	tests := []struct {
		soil string
		want bool
	}{
		{"Black Cotton", true},
		{"Coastal Alluvial", true},
		{"alluvial", true},
		{"Blackened Sand", false},
		{"Nonalluvial Clay", false},
		{"Sandy", false},
	}

	a := NewArbitrator(nil)
	for _, tt := range tests {
		p := &location.Profile{Soil: &reference.SoilProfile{Type: tt.soil}}
		if got := a.complexSoil(p); got != tt.want {
			t.Errorf("complexSoil(%q) = %v, want %v", tt.soil, got, tt.want)
		}
	}
	if a.complexSoil(nil) {
		t.Error("complexSoil(nil) = true, want false")
	}
}

func TestJustification(t *testing.T) {
	d := ArbitrationDecision{
		Strategy: StrategyRuleCascade,
		Reasons:  []Reason{ReasonHighClimateRisk, ReasonExtremeWater},
	}
	want := "rule_cascade: high_climate_risk, extreme_water_availability"
	if got := d.Justification(); got != want {
		t.Errorf("Justification() = %q, want %q", got, want)
	}
}
