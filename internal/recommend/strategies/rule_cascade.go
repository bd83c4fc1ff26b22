// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package strategies

import (
	"math"
	"sort"
	"strings"

	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/recommend"
	"github.com/Romeombugua/e-mkulima/internal/reference"
	"github.com/Romeombugua/e-mkulima/internal/tier"
)

// Factor names reported in the rule cascade breakdown. Soil and nutrients
// share names with the weighted sum.
const (
	FactorTemperature = "temperature"
	FactorClimateRisk = "climate_risk"
)

// ruleCascadeWeights are feature importances summing to 1.
var ruleCascadeWeights = []weight{
	{FactorSoil, 0.25},
	{FactorWater, 0.22},
	{FactorTemperature, 0.20},
	{FactorNutrients, 0.18},
	{FactorClimateRisk, 0.15},
}

// topFactorCount is the number of factors reported per result.
const topFactorCount = 3

// soilFamilies are coarse soil groups that earn partial credit when both the
// location and the crop name them as a whole word.
var soilFamilies = []string{"black", "red", "alluvial"}

// DefaultHardyCrops are crop ids that tolerate high climate risk regardless of
// their water tier.
var DefaultHardyCrops = []string{"millet"}

// RuleCascade scores crops with nested per-factor rules.
type RuleCascade struct {
	hardy map[string]bool
}

// NewRuleCascade creates the rule cascade strategy. With no arguments the
// hardy crop set is DefaultHardyCrops.
func NewRuleCascade(hardyCrops ...string) *RuleCascade {
	if len(hardyCrops) == 0 {
		hardyCrops = DefaultHardyCrops
	}
	hardy := make(map[string]bool, len(hardyCrops))
	for _, id := range hardyCrops {
		hardy[reference.Key(id)] = true
	}
	return &RuleCascade{hardy: hardy}
}

// ID returns recommend.StrategyRuleCascade.
func (r *RuleCascade) ID() recommend.StrategyID {
	return recommend.StrategyRuleCascade
}

// Score computes the suitability of crop for the profile. Farm size does not
// enter the cascade.
func (r *RuleCascade) Score(crop *reference.CropRequirement, profile *location.Profile, _ string) recommend.SuitabilityResult {
	breakdown := map[string]float64{
		FactorSoil:        r.soil(crop, profile),
		FactorWater:       r.water(crop, profile),
		FactorTemperature: r.temperature(crop, profile),
		FactorNutrients:   r.nutrients(crop, profile),
		FactorClimateRisk: r.climateRisk(crop, profile),
	}
	score := weightedTotal(breakdown, ruleCascadeWeights)

	return recommend.SuitabilityResult{
		CropID:     crop.ID,
		CropName:   crop.Name,
		Strategy:   recommend.StrategyRuleCascade,
		Score:      score,
		RawScore:   score,
		Breakdown:  breakdown,
		TopFactors: topFactors(breakdown),
	}
}

// topFactors ranks factors by score times importance. Ties keep table order.
func topFactors(breakdown map[string]float64) []recommend.Factor {
	factors := make([]recommend.Factor, len(ruleCascadeWeights))
	for i, w := range ruleCascadeWeights {
		factors[i] = recommend.Factor{Name: w.name, Score: breakdown[w.name], Weight: w.value}
	}
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].Influence() > factors[j].Influence()
	})
	return factors[:topFactorCount]
}

func (r *RuleCascade) soil(crop *reference.CropRequirement, profile *location.Profile) float64 {
	if profile.SoilMatches(crop.SoilTypes) {
		if profile.PHWithin(crop.PH) {
			return 0.9
		}
		return 0.7
	}

	cropSoils := strings.Join(crop.SoilTypes, " ")
	for _, family := range soilFamilies {
		if profile.SoilMentions(family) && location.ContainsWord(cropSoils, family) {
			return 0.3
		}
	}
	return 0.1
}

func (r *RuleCascade) water(crop *reference.CropRequirement, profile *location.Profile) float64 {
	rainfall := profile.Rainfall()
	need := crop.WaterMM

	switch {
	case rainfall >= need*0.8:
		if rainfall > need*1.5 {
			if profile.Drainage().WellDrained() {
				return 1.0
			}
			// waterlogging risk
			return 0.8
		}
		return 1.0
	case rainfall >= need*0.5:
		return 0.4
	default:
		return 0.1
	}
}

func (r *RuleCascade) temperature(crop *reference.CropRequirement, profile *location.Profile) float64 {
	if !profile.HasClimate() {
		return 0.5
	}

	climate := profile.Climate.Temperature
	if !climate.Overlaps(crop.Temperature) {
		return 0.1
	}

	overlap := math.Min(climate.Max, crop.Temperature.Max) - math.Max(climate.Min, crop.Temperature.Min)
	ratio := 1.0
	if width := crop.Temperature.Width(); width > 0 {
		ratio = overlap / width
	}

	switch {
	case ratio >= 0.8:
		return 1.0
	case ratio >= 0.5:
		return 0.7
	default:
		return 0.4
	}
}

func (r *RuleCascade) nutrients(crop *reference.CropRequirement, profile *location.Profile) float64 {
	if !profile.HasSoil() {
		return 0.5
	}

	soil := profile.Soil
	matches := 0
	if tier.Level(soil.Nitrogen) >= tier.Level(crop.Nutrients.Nitrogen) {
		matches++
	}
	if tier.Level(soil.Phosphorus) >= tier.Level(crop.Nutrients.Phosphorus) {
		matches++
	}
	if tier.Level(soil.Potassium) >= tier.Level(crop.Nutrients.Potassium) {
		matches++
	}

	switch matches {
	case 3:
		return 1.0
	case 2:
		return 0.7
	case 1:
		return 0.4
	default:
		return 0.2
	}
}

func (r *RuleCascade) climateRisk(crop *reference.CropRequirement, profile *location.Profile) float64 {
	risk := profile.ClimateRisk()
	water := tier.Parse(crop.WaterRequirement)

	switch {
	case risk < 0.3:
		return 1.0
	case risk < 0.6:
		switch water {
		case tier.Low, tier.VeryLow:
			return 0.8
		case tier.Medium:
			return 0.6
		default:
			return 0.4
		}
	default:
		if water == tier.VeryLow || r.hardy[reference.Key(crop.ID)] {
			return 0.6
		}
		return 0.3
	}
}
