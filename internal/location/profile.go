// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package location

import (
	"math"
	"strings"
	"unicode"

	"github.com/Romeombugua/e-mkulima/internal/reference"
	"github.com/Romeombugua/e-mkulima/internal/tier"
)

// Index scaling and defaults.
const (
	// RainfallSaturationMM is the rainfall at which availability reaches 1 before drainage.
	RainfallSaturationMM = 1500.0

	// UnknownClimateRisk is used when no climate profile exists. Missing data is
	// treated as moderate risk, not as no risk.
	UnknownClimateRisk = 0.5

	// Risk weights in hundredths so sums compare exactly against thresholds.
	severeRiskWeight = 30
	otherRiskWeight  = 15
	riskCap          = 100
)

// severeRisks are the hazard tags weighted double.
var severeRisks = map[string]bool{
	"extreme_drought": true,
	"cyclones":        true,
	"heavy_rainfall":  true,
	"extreme_heat":    true,
}

// Profile is the resolved environment of one subregion. Soil and Climate are
// independent and either may be nil.
type Profile struct {
	Region    string                    `json:"region"`
	Subregion string                    `json:"subregion"`
	Soil      *reference.SoilProfile    `json:"soil"`
	Climate   *reference.ClimateProfile `json:"climate"`
}

// Indices are the derived, normalized location scores.
type Indices struct {
	SoilNutrient      float64 `json:"soil_nutrient"`
	WaterAvailability float64 `json:"water_availability"`
	ClimateRisk       float64 `json:"climate_risk"`
}

// HasSoil reports whether a soil profile is present.
func (p *Profile) HasSoil() bool {
	return p != nil && p.Soil != nil
}

// HasClimate reports whether a climate profile is present.
func (p *Profile) HasClimate() bool {
	return p != nil && p.Climate != nil
}

// Complete reports whether both profiles are present.
func (p *Profile) Complete() bool {
	return p.HasSoil() && p.HasClimate()
}

// Indices computes all three derived scores.
func (p *Profile) Indices() Indices {
	return Indices{
		SoilNutrient:      p.SoilNutrientScore(),
		WaterAvailability: p.WaterAvailability(),
		ClimateRisk:       p.ClimateRisk(),
	}
}

// SoilNutrientScore is the mean nutrient value of N, P, K and organic matter.
func (p *Profile) SoilNutrientScore() float64 {
	if !p.HasSoil() {
		return 0
	}
	s := p.Soil
	return (tier.Nutrient(s.Nitrogen) +
		tier.Nutrient(s.Phosphorus) +
		tier.Nutrient(s.Potassium) +
		tier.Nutrient(s.OrganicMatter)) / 4
}

// WaterAvailability scores rainfall adjusted for soil drainage, in [0,1].
func (p *Profile) WaterAvailability() float64 {
	if !p.HasClimate() {
		return 0
	}
	score := math.Min(p.Climate.AvgRainfall/RainfallSaturationMM, 1.0)
	if p.HasSoil() {
		score += tier.ParseDrainage(p.Soil.Drainage).Bonus()
	}
	return clamp01(score)
}

// ClimateRisk aggregates the risk tags of the climate profile into [0,1].
func (p *Profile) ClimateRisk() float64 {
	if !p.HasClimate() {
		return UnknownClimateRisk
	}
	risk := 0
	for _, tag := range p.Climate.Risks {
		if severeRisks[tier.Key(tag)] {
			risk += severeRiskWeight
		} else {
			risk += otherRiskWeight
		}
	}
	return float64(min(risk, riskCap)) / 100
}

// SoilType returns the soil type, or "" without soil.
func (p *Profile) SoilType() string {
	if !p.HasSoil() {
		return ""
	}
	return p.Soil.Type
}

// Drainage returns the soil drainage class.
func (p *Profile) Drainage() tier.Drainage {
	if !p.HasSoil() {
		return tier.DrainageUnknown
	}
	return tier.ParseDrainage(p.Soil.Drainage)
}

// Rainfall returns average rainfall in millimetres, 0 without climate.
func (p *Profile) Rainfall() float64 {
	if !p.HasClimate() {
		return 0
	}
	return p.Climate.AvgRainfall
}

// SoilMatches reports whether the soil type is one of types.
func (p *Profile) SoilMatches(types []string) bool {
	if !p.HasSoil() {
		return false
	}
	k := tier.Key(p.Soil.Type)
	for _, t := range types {
		if tier.Key(t) == k {
			return true
		}
	}
	return false
}

// SoilMentions reports whether the soil type contains word as a whole word,
// ignoring case. "Red Loam" mentions "red"; "Weathered Granite" does not.
func (p *Profile) SoilMentions(word string) bool {
	return p.HasSoil() && ContainsWord(p.Soil.Type, word)
}

// ContainsWord reports whether text contains word as a whole word, ignoring
// case. Words are split on anything that is not a letter or digit.
func ContainsWord(text, word string) bool {
	for _, w := range strings.FieldsFunc(text, notWordRune) {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}

func notWordRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// PHWithin reports whether soil pH lies in r, inclusive.
func (p *Profile) PHWithin(r reference.Range) bool {
	return p.HasSoil() && r.Contains(p.Soil.PH)
}

// TemperatureOverlaps reports whether the climate temperature range overlaps r.
func (p *Profile) TemperatureOverlaps(r reference.Range) bool {
	return p.HasClimate() && p.Climate.Temperature.Overlaps(r)
}

// HasRisk reports whether the climate profile carries the risk tag.
func (p *Profile) HasRisk(tag string) bool {
	if !p.HasClimate() {
		return false
	}
	k := tier.Key(tag)
	for _, t := range p.Climate.Risks {
		if tier.Key(t) == k {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
