// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package location

import (
	"math"
	"testing"

	"github.com/Romeombugua/e-mkulima/internal/reference"
)

const epsilon = 1e-9

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	cat, err := reference.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	return NewResolver(cat)
}

func TestResolve(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name          string
		region        string
		subregion     string
		wantSubregion string
		wantSoil      bool
		wantClimate   bool
	}{
		{"default subregion", "Khartoum", "", "Nile Valley", true, true},
		{"explicit subregion", "Khartoum", "Semi-Desert", "Semi-Desert", true, true},
		{"normalized names", "river_nile", "desert margin", "Desert Margin", true, true},
		{"soil only", "Khartoum", "Coastal Plains", "Coastal Plains", true, false},
		{"unknown region", "Atlantis", "", "", false, false},
		{"unknown subregion", "Khartoum", "Moon Base", "Moon Base", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := r.Resolve(tt.region, tt.subregion)
			if p.Subregion != tt.wantSubregion {
				t.Errorf("Subregion = %q, want %q", p.Subregion, tt.wantSubregion)
			}
			if p.HasSoil() != tt.wantSoil {
				t.Errorf("HasSoil() = %v, want %v", p.HasSoil(), tt.wantSoil)
			}
			if p.HasClimate() != tt.wantClimate {
				t.Errorf("HasClimate() = %v, want %v", p.HasClimate(), tt.wantClimate)
			}
		})
	}
}

func TestIndices(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name      string
		region    string
		subregion string
		want      Indices
	}{
		{"nile valley", "Khartoum", "", Indices{SoilNutrient: 0.675, WaterAvailability: 0.15, ClimateRisk: 0.45}},
		{"semi desert", "Khartoum", "Semi-Desert", Indices{SoilNutrient: 0.25, WaterAvailability: 100.0/1500 + 0.1, ClimateRisk: 0.6}},
		{"poor drainage", "Sennar", "", Indices{SoilNutrient: 0.675, WaterAvailability: 0.2, ClimateRisk: 0.3}},
		{"soil without climate", "Khartoum", "Coastal Plains", Indices{SoilNutrient: 0.6, WaterAvailability: 0, ClimateRisk: 0.5}},
		{"unknown", "Atlantis", "", Indices{SoilNutrient: 0, WaterAvailability: 0, ClimateRisk: 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.region, tt.subregion).Indices()
			if math.Abs(got.SoilNutrient-tt.want.SoilNutrient) > epsilon {
				t.Errorf("SoilNutrient = %v, want %v", got.SoilNutrient, tt.want.SoilNutrient)
			}
			if math.Abs(got.WaterAvailability-tt.want.WaterAvailability) > epsilon {
				t.Errorf("WaterAvailability = %v, want %v", got.WaterAvailability, tt.want.WaterAvailability)
			}
			if math.Abs(got.ClimateRisk-tt.want.ClimateRisk) > epsilon {
				t.Errorf("ClimateRisk = %v, want %v", got.ClimateRisk, tt.want.ClimateRisk)
			}
		})
	}
}

func TestWaterAvailability_Clamped(t *testing.T) {
	wet := &Profile{
		Soil:    &reference.SoilProfile{Drainage: "Excellent"},
		Climate: &reference.ClimateProfile{AvgRainfall: 3000},
	}
	if got := wet.WaterAvailability(); got != 1 {
		t.Errorf("WaterAvailability() = %v, want 1", got)
	}

	dry := &Profile{
		Soil:    &reference.SoilProfile{Drainage: "Poor"},
		Climate: &reference.ClimateProfile{AvgRainfall: 30},
	}
	if got := dry.WaterAvailability(); got != 0 {
		t.Errorf("WaterAvailability() = %v, want 0", got)
	}

	noSoil := &Profile{Climate: &reference.ClimateProfile{AvgRainfall: 750}}
	if got := noSoil.WaterAvailability(); got != 0.5 {
		t.Errorf("WaterAvailability() without soil = %v, want 0.5", got)
	}
}

func TestClimateRisk_Capped(t *testing.T) {
	p := &Profile{Climate: &reference.ClimateProfile{
		Risks: []string{"Extreme heat", "Cyclones", "Heavy rainfall", "Extreme drought"},
	}}
	if got := p.ClimateRisk(); got != 1 {
		t.Errorf("ClimateRisk() = %v, want 1", got)
	}

	none := &Profile{Climate: &reference.ClimateProfile{}}
	if got := none.ClimateRisk(); got != 0 {
		t.Errorf("ClimateRisk() with no tags = %v, want 0", got)
	}
}

func TestProfileChecks(t *testing.T) {
	p := &Profile{
		Soil:    &reference.SoilProfile{Type: "Sandy", PH: 7.8},
		Climate: &reference.ClimateProfile{Temperature: reference.Range{Min: 12, Max: 45}, Risks: []string{"Severe drought"}},
	}

	if !p.SoilMatches([]string{"Sandy Loam", "sandy"}) {
		t.Error("SoilMatches() = false, want true")
	}
	if p.SoilMatches([]string{"Sandy Loam"}) {
		t.Error("SoilMatches() matched a different soil type")
	}
	if !p.PHWithin(reference.Range{Min: 5.0, Max: 7.8}) {
		t.Error("PHWithin() is not inclusive of the upper bound")
	}
	if !p.TemperatureOverlaps(reference.Range{Min: 45, Max: 50}) {
		t.Error("TemperatureOverlaps() should include touching ranges")
	}
	if !p.HasRisk("severe drought") {
		t.Error("HasRisk(severe drought) = false")
	}
	if p.HasRisk("Drought") {
		t.Error("HasRisk(Drought) matched a longer tag")
	}

	var empty Profile
	if empty.SoilMatches([]string{""}) || empty.PHWithin(reference.Range{}) || empty.TemperatureOverlaps(reference.Range{}) {
		t.Error("checks on an empty profile must be false")
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		text string
		word string
		want bool
	}{
		{"Red Loam", "red", true},
		{"Deep BLACK cotton", "black", true},
		{"red-brown", "red", true},
		{"Weathered Granite", "red", false},
		{"Alluvium", "alluvial", false},
		{"", "red", false},
	}
	for _, tt := range tests {
		if got := ContainsWord(tt.text, tt.word); got != tt.want {
			t.Errorf("ContainsWord(%q, %q) = %v, want %v", tt.text, tt.word, got, tt.want)
		}
	}

	p := &Profile{Soil: &reference.SoilProfile{Type: "Weathered Granite"}}
	if p.SoilMentions("red") {
		t.Error("SoilMentions(red) matched inside Weathered")
	}
	var empty *Profile
	if empty.SoilMentions("red") {
		t.Error("SoilMentions on nil profile = true")
	}
}

func TestSubregions(t *testing.T) {
	r := newTestResolver(t)

	subs := r.Subregions("North Kordofan")
	if len(subs) != 2 || subs[0] != "Semi-Desert" {
		t.Errorf("Subregions() = %v", subs)
	}
	if got := r.Subregions("Atlantis"); got != nil {
		t.Errorf("Subregions(unknown) = %v, want nil", got)
	}
	if def, ok := r.DefaultSubregion("North Darfur"); !ok || def != "Semi-Desert" {
		t.Errorf("DefaultSubregion() = %q, %v", def, ok)
	}
	if got := len(r.Regions()); got != 12 {
		t.Errorf("len(Regions()) = %d, want 12", got)
	}
}
