// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package recommend

import (
	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/reference"
)

// StrategyID identifies a scoring strategy.
type StrategyID string

// Known strategies.
const (
	StrategyWeightedSum StrategyID = "weighted_sum"
	StrategyRuleCascade StrategyID = "rule_cascade"
)

// Strategy scores one crop against one location.
//
// Implementations must be pure: the same inputs always produce the same
// result, and neither the crop nor the profile may be modified.
type Strategy interface {
	// ID returns the strategy identifier.
	ID() StrategyID

	// Score computes the suitability of crop for the profile and farm size.
	Score(crop *reference.CropRequirement, profile *location.Profile, farmSize string) SuitabilityResult
}

// YieldCategory buckets a suitability score into an expected yield band.
type YieldCategory string

// Yield bands.
const (
	YieldHigh       YieldCategory = "high"
	YieldMediumHigh YieldCategory = "medium_high"
	YieldMedium     YieldCategory = "medium"
	YieldLowMedium  YieldCategory = "low_medium"
	YieldLow        YieldCategory = "low"
)

// Factor is one weighted sub-score.
type Factor struct {
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// Influence is the factor's contribution to the combined score.
func (f Factor) Influence() float64 {
	return f.Score * f.Weight
}

// SuitabilityResult is one crop's score from one strategy.
type SuitabilityResult struct {
	CropID   string     `json:"crop_id"`
	CropName string     `json:"crop_name"`
	Strategy StrategyID `json:"strategy"`

	// Score is the final suitability in [0,1].
	Score float64 `json:"score"`

	// RawScore is the weighted sum before any squashing.
	RawScore float64 `json:"raw_score"`

	// Breakdown maps factor name to its unweighted sub-score.
	Breakdown map[string]float64 `json:"breakdown"`

	// Yield is set by strategies that estimate a yield band.
	Yield YieldCategory `json:"yield,omitempty"`

	// TopFactors is set by strategies that rank their own factors.
	TopFactors []Factor `json:"top_factors,omitempty"`
}

// Recommendation is the output of RankCrops.
type Recommendation struct {
	Decision ArbitrationDecision `json:"decision"`
	Ranked   []SuitabilityResult `json:"ranked"`
}

// Comparison ranks the same crops with every registered strategy.
type Comparison struct {
	Decision ArbitrationDecision                `json:"decision"`
	Rankings map[StrategyID][]SuitabilityResult `json:"rankings"`
}

// Top returns at most n results from the head of a ranking.
func Top(results []SuitabilityResult, n int) []SuitabilityResult {
	if n <= 0 || n >= len(results) {
		return results
	}
	return results[:n]
}
