// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package recommend

import (
	"math"
	"strings"

	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/tier"
)

// Reason is a machine-readable arbitration justification.
type Reason string

// Reasons for selecting weighted_sum.
const (
	ReasonComplexSoil          Reason = "complex_soil_profile"
	ReasonComplexZone          Reason = "complex_agro_ecological_zone"
	ReasonOptimalForConditions Reason = "optimal_for_conditions"
)

// Reasons for selecting rule_cascade.
const (
	ReasonHighClimateRisk Reason = "high_climate_risk"
	ReasonExtremeWater    Reason = "extreme_water_availability"
	ReasonOptimalRules    Reason = "optimal_rule_logic"
)

// Applicability increments in hundredths, {weighted_sum, rule_cascade}.
// Integer totals keep the comparison exact.
var (
	completeDataPoints = [2]int{20, 15}
	highRiskPoints     = [2]int{15, 25}
	normalRiskPoints   = [2]int{20, 20}
	complexSoilPoints  = [2]int{25, 20}
	simpleSoilPoints   = [2]int{20, 25}
	extremeWaterPoints = [2]int{15, 20}
	normalWaterPoints  = [2]int{20, 15}
	complexZonePoints  = [2]int{20, 15}
	standardZonePoints = [2]int{15, 20}
)

// Arbitration thresholds.
const (
	highRiskThreshold  = 0.6
	lowWaterThreshold  = 0.4
	highWaterThreshold = 0.8
)

// complexSoilMarkers are soil type words that indicate a complex profile.
var complexSoilMarkers = []string{"black", "alluvial"}

// ArbitrationDecision records which strategy was chosen and why.
type ArbitrationDecision struct {
	Strategy StrategyID `json:"strategy"`

	// Totals holds each strategy's applicability total.
	Totals map[StrategyID]float64 `json:"totals"`

	// Margin is the absolute difference of the totals.
	Margin float64 `json:"margin"`

	// Confidence is Margin in percentage points rounded to one decimal.
	// It is an uncalibrated magnitude, not a probability.
	Confidence float64 `json:"confidence"`

	Reasons []Reason `json:"reasons"`
}

// Justification renders the decision as "strategy: reason, reason".
func (d ArbitrationDecision) Justification() string {
	keys := make([]string, len(d.Reasons))
	for i, r := range d.Reasons {
		keys[i] = string(r)
	}
	return string(d.Strategy) + ": " + strings.Join(keys, ", ")
}

// Arbitrator picks the strategy best suited to a location.
type Arbitrator struct {
	complexZones map[string]bool
}

// NewArbitrator creates an arbitrator. Zone names are matched after normalization.
func NewArbitrator(complexZones []string) *Arbitrator {
	zones := make(map[string]bool, len(complexZones))
	for _, z := range complexZones {
		zones[tier.Key(z)] = true
	}
	return &Arbitrator{complexZones: zones}
}

// Decide scores both strategies' applicability to the profile and selects
// one. weighted_sum wins only with a strictly higher total.
func (a *Arbitrator) Decide(profile *location.Profile) ArbitrationDecision {
	var points [2]int
	add := func(p [2]int) {
		points[0] += p[0]
		points[1] += p[1]
	}

	if profile.Complete() {
		add(completeDataPoints)
	}

	highRisk := profile.ClimateRisk() > highRiskThreshold
	if highRisk {
		add(highRiskPoints)
	} else {
		add(normalRiskPoints)
	}

	complexSoil := a.complexSoil(profile)
	if complexSoil {
		add(complexSoilPoints)
	} else {
		add(simpleSoilPoints)
	}

	water := profile.WaterAvailability()
	extremeWater := water < lowWaterThreshold || water > highWaterThreshold
	if extremeWater {
		add(extremeWaterPoints)
	} else {
		add(normalWaterPoints)
	}

	complexZone := a.complexZone(profile)
	if complexZone {
		add(complexZonePoints)
	} else {
		add(standardZonePoints)
	}

	diff := points[0] - points[1]
	if diff < 0 {
		diff = -diff
	}

	d := ArbitrationDecision{
		Totals: map[StrategyID]float64{
			StrategyWeightedSum: float64(points[0]) / 100,
			StrategyRuleCascade: float64(points[1]) / 100,
		},
		Margin:     float64(diff) / 100,
		Confidence: math.Round(float64(diff)*10) / 10,
	}

	if points[0] > points[1] {
		d.Strategy = StrategyWeightedSum
		if complexSoil {
			d.Reasons = append(d.Reasons, ReasonComplexSoil)
		}
		if complexZone {
			d.Reasons = append(d.Reasons, ReasonComplexZone)
		}
		if len(d.Reasons) == 0 {
			d.Reasons = append(d.Reasons, ReasonOptimalForConditions)
		}
		return d
	}

	d.Strategy = StrategyRuleCascade
	if highRisk {
		d.Reasons = append(d.Reasons, ReasonHighClimateRisk)
	}
	if extremeWater {
		d.Reasons = append(d.Reasons, ReasonExtremeWater)
	}
	if len(d.Reasons) == 0 {
		d.Reasons = append(d.Reasons, ReasonOptimalRules)
	}
	return d
}

func (a *Arbitrator) complexSoil(profile *location.Profile) bool {
	for _, marker := range complexSoilMarkers {
		if profile.SoilMentions(marker) {
			return true
		}
	}
	return false
}

func (a *Arbitrator) complexZone(profile *location.Profile) bool {
	return profile != nil && a.complexZones[tier.Key(profile.Subregion)]
}
