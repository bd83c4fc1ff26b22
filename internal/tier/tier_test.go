// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package tier

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  Tier
	}{
		{"Very Low", VeryLow},
		{"very_low", VeryLow},
		{"VERY-LOW", VeryLow},
		{"Low", Low},
		{" medium ", Medium},
		{"High", High},
		{"Very  High", VeryHigh},
		{"", Unknown},
		{"Extreme", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Parse(tt.label); got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestLevelAndNutrient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label    string
		level    int
		nutrient float64
	}{
		{"Very Low", 1, 0.1},
		{"Low", 2, 0.3},
		{"Medium", 3, 0.6},
		{"High", 4, 0.9},
		{"Very High", 5, 1.0},
		{"bogus", 3, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Level(tt.label); got != tt.level {
				t.Errorf("Level(%q) = %d, want %d", tt.label, got, tt.level)
			}
			if got := Nutrient(tt.label); math.Abs(got-tt.nutrient) > 1e-9 {
				t.Errorf("Nutrient(%q) = %v, want %v", tt.label, got, tt.nutrient)
			}
		})
	}
}

func TestExpectedDrainage(t *testing.T) {
	t.Parallel()

	tests := map[string]Drainage{
		"Very High": DrainagePoor,
		"High":      DrainageModerate,
		"Medium":    DrainageGood,
		"Low":       DrainageGood,
		"Very Low":  DrainageExcellent,
		"unknown":   DrainageUnknown,
	}
	for label, want := range tests {
		if got := ExpectedDrainage(label); got != want {
			t.Errorf("ExpectedDrainage(%q) = %v, want %v", label, got, want)
		}
	}
}

func TestDrainageBonus(t *testing.T) {
	t.Parallel()

	tests := map[string]float64{
		"Excellent": 0.10,
		"Good":      0.05,
		"Moderate":  0,
		"Poor":      -0.10,
		"Swampy":    0,
	}
	for label, want := range tests {
		if got := ParseDrainage(label).Bonus(); got != want {
			t.Errorf("ParseDrainage(%q).Bonus() = %v, want %v", label, got, want)
		}
	}
}

func TestFarmSizeAtLeast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		farm, minimum string
		want          bool
	}{
		{"very_small", "Very Small", true},
		{"very_small", "Small", false},
		{"Small", "small", true},
		{"large", "Medium", true},
		{"medium", "Large", false},
		{"", "Medium", true},
		{"Very Large", "", true},
	}

	for _, tt := range tests {
		if got := FarmSizeAtLeast(tt.farm, tt.minimum); got != tt.want {
			t.Errorf("FarmSizeAtLeast(%q, %q) = %v, want %v", tt.farm, tt.minimum, got, tt.want)
		}
	}
}

func TestFarmSizeString(t *testing.T) {
	t.Parallel()

	for _, key := range FarmSizes {
		if got := ParseFarmSize(key).String(); got != key {
			t.Errorf("ParseFarmSize(%q).String() = %q", key, got)
		}
	}
	if got := FarmSizeUnknown.String(); got != "unknown" {
		t.Errorf("FarmSizeUnknown.String() = %q, want unknown", got)
	}
}
