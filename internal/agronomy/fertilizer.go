// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package agronomy

import (
	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/reference"
	"github.com/Romeombugua/e-mkulima/internal/tier"
)

// Nutrient names a macronutrient.
type Nutrient string

// Macronutrients in plan order.
const (
	Nitrogen   Nutrient = "nitrogen"
	Phosphorus Nutrient = "phosphorus"
	Potassium  Nutrient = "potassium"
)

// Application is how much of a nutrient to apply.
type Application string

// Application tiers.
const (
	ApplicationHigh   Application = "high"
	ApplicationMedium Application = "medium"
	ApplicationLow    Application = "low"
)

// CostLevel rates how cheaply the soil can be brought up to the crop's needs.
type CostLevel string

// Cost levels.
const (
	CostExcellent CostLevel = "excellent"
	CostGood      CostLevel = "good"
	CostFair      CostLevel = "fair"
)

// Nutrient gap thresholds on the 1..5 scale.
const (
	highGapAbove   = 1
	mediumGapAbove = 0

	// moderateCostMaxGap is the largest summed gap still rated good.
	moderateCostMaxGap = 3
)

// NutrientGap compares a soil level with the crop requirement.
// Gap is crop level minus soil level; positive means a deficit.
type NutrientGap struct {
	Nutrient Nutrient `json:"nutrient"`
	Soil     string   `json:"soil"`
	Crop     string   `json:"crop"`
	Gap      int      `json:"gap"`
}

// Dosage is an application rate range.
type Dosage struct {
	Min  int    `json:"min"`
	Max  int    `json:"max"`
	Unit string `json:"unit"`
}

// Split is one share of a split application.
type Split struct {
	Percent int    `json:"percent"`
	Stage   string `json:"stage"`
}

// NutrientAdvice is the fertilizer recommendation for one nutrient.
type NutrientAdvice struct {
	Nutrient    Nutrient    `json:"nutrient"`
	Application Application `json:"application"`
	Products    []string    `json:"products"`
	Dosage      Dosage      `json:"dosage"`
	Timing      []Split     `json:"timing"`
}

// CostEstimate is the cost band of closing all nutrient gaps.
type CostEstimate struct {
	Level    CostLevel `json:"level"`
	Cost     string    `json:"estimated_cost"`
	TotalGap int       `json:"total_gap"`
}

// OrganicOption is an organic alternative to mineral fertilizer.
type OrganicOption struct {
	Type        string `json:"type"`
	Provides    string `json:"provides"`
	Application string `json:"application"`
}

// FertilizerPlan is the fertilizer advice for one crop at one location.
// Gaps, Recommendations and Cost are nil when the location has no soil data.
type FertilizerPlan struct {
	CropID          string           `json:"crop_id"`
	Gaps            []NutrientGap    `json:"nutrient_gaps"`
	Recommendations []NutrientAdvice `json:"recommendations"`
	Cost            *CostEstimate    `json:"cost,omitempty"`
	Organic         []OrganicOption  `json:"organic_alternatives"`
	Tips            []string         `json:"general_tips"`
}

const (
	unitN = "kg_n_per_hectare"
	unitP = "kg_p2o5_per_hectare"
	unitK = "kg_k2o_per_hectare"
)

var basal = []Split{{100, "basal"}}

// fertilizerTable holds the recommendation for each nutrient and application tier.
var fertilizerTable = map[Nutrient]map[Application]NutrientAdvice{
	Nitrogen: {
		ApplicationHigh: {
			Products: []string{"urea", "ammonium_sulphate", "dap"},
			Dosage:   Dosage{120, 150, unitN},
			Timing:   []Split{{50, "basal"}, {25, "day_30"}, {25, "day_60"}},
		},
		ApplicationMedium: {
			Products: []string{"urea", "dap"},
			Dosage:   Dosage{80, 100, unitN},
			Timing:   []Split{{50, "basal"}, {50, "day_30"}},
		},
		ApplicationLow: {
			Products: []string{"organic_manure", "compost"},
			Dosage:   Dosage{40, 60, unitN},
			Timing:   basal,
		},
	},
	Phosphorus: {
		ApplicationHigh: {
			Products: []string{"single_super_phosphate", "dap"},
			Dosage:   Dosage{60, 80, unitP},
			Timing:   basal,
		},
		ApplicationMedium: {
			Products: []string{"single_super_phosphate", "dap"},
			Dosage:   Dosage{40, 50, unitP},
			Timing:   basal,
		},
		ApplicationLow: {
			Products: []string{"rock_phosphate", "bone_meal"},
			Dosage:   Dosage{20, 30, unitP},
			Timing:   basal,
		},
	},
	Potassium: {
		ApplicationHigh: {
			Products: []string{"muriate_of_potash"},
			Dosage:   Dosage{80, 100, unitK},
			Timing:   []Split{{50, "basal"}, {50, "flowering"}},
		},
		ApplicationMedium: {
			Products: []string{"muriate_of_potash"},
			Dosage:   Dosage{40, 60, unitK},
			Timing:   basal,
		},
		ApplicationLow: {
			Products: []string{"wood_ash", "compost"},
			Dosage:   Dosage{20, 30, unitK},
			Timing:   basal,
		},
	},
}

// GeneralTips are appended to every fertilizer plan.
var GeneralTips = []string{
	"soil_test_before_application",
	"apply_on_moist_soil",
	"avoid_over_fertilization",
	"consider_organic_options",
}

// OrganicAlternatives are appended to every fertilizer plan.
var OrganicAlternatives = []OrganicOption{
	{"vermicompost", "balanced_npk", "5-10 t/ha"},
	{"farm_yard_manure", "general_nutrition", "10-15 t/ha"},
	{"green_manure", "nitrogen", "grow_and_incorporate_legumes"},
	{"neem_cake", "nitrogen_and_pest_control", "200-400 kg/ha"},
}

// BuildFertilizerPlan derives the fertilizer plan for crop at the profile.
func BuildFertilizerPlan(profile *location.Profile, crop *reference.CropRequirement) *FertilizerPlan {
	plan := &FertilizerPlan{
		CropID:  crop.ID,
		Organic: append([]OrganicOption(nil), OrganicAlternatives...),
		Tips:    append([]string(nil), GeneralTips...),
	}

	gaps := NutrientGaps(profile, crop)
	if gaps == nil {
		return plan
	}

	plan.Gaps = gaps
	plan.Recommendations = make([]NutrientAdvice, 0, len(gaps))
	for _, g := range gaps {
		plan.Recommendations = append(plan.Recommendations, adviseNutrient(g))
	}
	cost := EstimateCost(gaps)
	plan.Cost = &cost
	return plan
}

// NutrientGaps returns the N, P and K gaps, or nil without soil data.
// Unknown tier labels count as Medium.
func NutrientGaps(profile *location.Profile, crop *reference.CropRequirement) []NutrientGap {
	if !profile.HasSoil() {
		return nil
	}
	soil := profile.Soil
	need := crop.Nutrients
	return []NutrientGap{
		gap(Nitrogen, soil.Nitrogen, need.Nitrogen),
		gap(Phosphorus, soil.Phosphorus, need.Phosphorus),
		gap(Potassium, soil.Potassium, need.Potassium),
	}
}

func gap(n Nutrient, soil, crop string) NutrientGap {
	return NutrientGap{
		Nutrient: n,
		Soil:     soil,
		Crop:     crop,
		Gap:      tier.Level(crop) - tier.Level(soil),
	}
}

// ApplicationFor maps a nutrient gap to an application tier.
func ApplicationFor(gap int) Application {
	switch {
	case gap > highGapAbove:
		return ApplicationHigh
	case gap > mediumGapAbove:
		return ApplicationMedium
	default:
		return ApplicationLow
	}
}

func adviseNutrient(g NutrientGap) NutrientAdvice {
	app := ApplicationFor(g.Gap)
	row := fertilizerTable[g.Nutrient][app]
	return NutrientAdvice{
		Nutrient:    g.Nutrient,
		Application: app,
		Products:    append([]string(nil), row.Products...),
		Dosage:      row.Dosage,
		Timing:      append([]Split(nil), row.Timing...),
	}
}

// EstimateCost rates the summed positive gaps. Surpluses do not offset deficits.
func EstimateCost(gaps []NutrientGap) CostEstimate {
	total := 0
	for _, g := range gaps {
		total += max(0, g.Gap)
	}
	switch {
	case total == 0:
		return CostEstimate{Level: CostExcellent, Cost: "low", TotalGap: total}
	case total <= moderateCostMaxGap:
		return CostEstimate{Level: CostGood, Cost: "medium", TotalGap: total}
	default:
		return CostEstimate{Level: CostFair, Cost: "high", TotalGap: total}
	}
}
