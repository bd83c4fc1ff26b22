// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package strategies

import (
	"math"
	"strings"

	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/recommend"
	"github.com/Romeombugua/e-mkulima/internal/reference"
	"github.com/Romeombugua/e-mkulima/internal/tier"
)

// Factor names reported in the weighted sum breakdown.
const (
	FactorSoil      = "soil"
	FactorClimate   = "climate"
	FactorWater     = "water"
	FactorNutrients = "nutrients"
	FactorFarmSize  = "farm_size"
)

// weightedSumWeights sum to 1. Order fixes the summation order.
var weightedSumWeights = []weight{
	{FactorSoil, 0.30},
	{FactorClimate, 0.25},
	{FactorWater, 0.20},
	{FactorNutrients, 0.15},
	{FactorFarmSize, 0.10},
}

// Soil and climate credits.
const (
	soilTypeCredit     = 0.5
	soilPHCredit       = 0.3
	soilDrainageCredit = 0.2

	tempOverlapCredit = 0.6
	tempNearCredit    = 0.3
	tempFarCredit     = 0.1
	tempNearGap       = 10.0
	tempFarGap        = 15.0
	seasonCredit      = 0.4

	// waterNormalizationMM maps crop water need onto the availability scale.
	waterNormalizationMM = 2000.0

	undersizedFarmScore = 0.3

	squashSteepness = 8.0
	squashMidpoint  = 0.5
)

// yieldLadder maps minimum final score to yield band, highest first.
var yieldLadder = []struct {
	min   float64
	yield recommend.YieldCategory
}{
	{0.8, recommend.YieldHigh},
	{0.6, recommend.YieldMediumHigh},
	{0.4, recommend.YieldMedium},
	{0.2, recommend.YieldLowMedium},
}

// WeightedSum scores crops as a squashed weighted sum of five sub-scores.
type WeightedSum struct{}

// NewWeightedSum creates the weighted sum strategy.
func NewWeightedSum() *WeightedSum {
	return &WeightedSum{}
}

// ID returns recommend.StrategyWeightedSum.
func (w *WeightedSum) ID() recommend.StrategyID {
	return recommend.StrategyWeightedSum
}

// Score computes the suitability of crop for the profile.
func (w *WeightedSum) Score(crop *reference.CropRequirement, profile *location.Profile, farmSize string) recommend.SuitabilityResult {
	breakdown := map[string]float64{
		FactorSoil:      w.soil(crop, profile),
		FactorClimate:   w.climate(crop, profile),
		FactorWater:     w.water(crop, profile),
		FactorNutrients: w.nutrients(crop, profile),
		FactorFarmSize:  w.farmSize(crop, farmSize),
	}

	raw := weightedTotal(breakdown, weightedSumWeights)
	score := Squash(raw)

	return recommend.SuitabilityResult{
		CropID:    crop.ID,
		CropName:  crop.Name,
		Strategy:  recommend.StrategyWeightedSum,
		Score:     score,
		RawScore:  raw,
		Breakdown: breakdown,
		Yield:     YieldFor(score),
	}
}

// Squash is the logistic function centred on 0.5 with steepness 8.
func Squash(raw float64) float64 {
	return 1 / (1 + math.Exp(-squashSteepness*(raw-squashMidpoint)))
}

// YieldFor returns the yield band for a final score.
func YieldFor(score float64) recommend.YieldCategory {
	for _, step := range yieldLadder {
		if score >= step.min {
			return step.yield
		}
	}
	return recommend.YieldLow
}

func (w *WeightedSum) soil(crop *reference.CropRequirement, profile *location.Profile) float64 {
	var score float64
	if profile.SoilMatches(crop.SoilTypes) {
		score += soilTypeCredit
	}
	if profile.PHWithin(crop.PH) {
		score += soilPHCredit
	}
	if expected := tier.ExpectedDrainage(crop.WaterRequirement); expected != tier.DrainageUnknown && profile.Drainage() == expected {
		score += soilDrainageCredit
	}
	return score
}

func (w *WeightedSum) climate(crop *reference.CropRequirement, profile *location.Profile) float64 {
	if !profile.HasClimate() {
		return 0
	}

	var score float64
	if profile.TemperatureOverlaps(crop.Temperature) {
		score += tempOverlapCredit
	} else {
		gap := math.Abs(profile.Climate.Temperature.Midpoint() - crop.Temperature.Midpoint())
		switch {
		case gap < tempNearGap:
			score += tempNearCredit
		case gap < tempFarGap:
			score += tempFarCredit
		}
	}

	if seasonMatches(profile.Climate.Season, crop.Season) {
		score += seasonCredit
	}
	return score
}

// seasonMatches reports whether the crop season fits the location season,
// or the crop can be planted in any season.
func seasonMatches(locationSeason, cropSeason string) bool {
	loc := strings.ToLower(locationSeason)
	crop := strings.ToLower(cropSeason)
	return strings.Contains(loc, crop) ||
		strings.Contains(crop, "year-round") ||
		strings.Contains(crop, "dual")
}

func (w *WeightedSum) water(crop *reference.CropRequirement, profile *location.Profile) float64 {
	need := crop.WaterMM / waterNormalizationMM
	return math.Max(0, 1-math.Abs(profile.WaterAvailability()-need))
}

func (w *WeightedSum) nutrients(crop *reference.CropRequirement, profile *location.Profile) float64 {
	if !profile.HasSoil() {
		return 0
	}
	soil := profile.Soil
	pairs := [3][2]string{
		{soil.Nitrogen, crop.Nutrients.Nitrogen},
		{soil.Phosphorus, crop.Nutrients.Phosphorus},
		{soil.Potassium, crop.Nutrients.Potassium},
	}

	var sum float64
	for _, p := range pairs {
		have, need := tier.Nutrient(p[0]), tier.Nutrient(p[1])
		if have >= need {
			sum++
		} else {
			sum += have / need
		}
	}
	return sum / 3
}

func (w *WeightedSum) farmSize(crop *reference.CropRequirement, farmSize string) float64 {
	if tier.FarmSizeAtLeast(farmSize, crop.MinFarmSize) {
		return 1.0
	}
	return undersizedFarmScore
}
