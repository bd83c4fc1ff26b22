// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package agronomy

import (
	"math"

	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/reference"
	"github.com/Romeombugua/e-mkulima/internal/tier"
)

// Frequency is an irrigation frequency band.
type Frequency string

// Frequency bands.
const (
	FrequencyRainfed  Frequency = "rainfed"
	FrequencyMinimal  Frequency = "minimal"
	FrequencyHigh     Frequency = "high"
	FrequencyModerate Frequency = "moderate"
	FrequencyLow      Frequency = "low"
)

// Method is an irrigation method.
type Method string

// Irrigation methods.
const (
	MethodFlood     Method = "flood"
	MethodDrip      Method = "drip"
	MethodSprinkler Method = "sprinkler"
)

// Priority ranks how critical watering is at a growth stage.
type Priority string

// Stage priorities.
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
)

// Advice is a machine-readable irrigation recommendation.
type Advice string

// Irrigation advice.
const (
	AdviceProtectCriticalStages Advice = "protect_critical_stages"
	AdviceInstallDrip           Advice = "install_drip_irrigation"
	AdviceStoreRainwater        Advice = "store_rainwater"
	AdviceApplyMulch            Advice = "apply_mulch"
	AdviceEnsureDrainage        Advice = "ensure_drainage"
)

// minimalDeficitPercent is the deficit below which light irrigation suffices.
const minimalDeficitPercent = 20.0

// paddyCrops use flood irrigation when their water tier is high.
var paddyCrops = map[string]bool{"rice": true}

// Span is an inclusive integer range such as a day window or a percentage.
type Span struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// WaterBudget compares crop need with rainfall.
type WaterBudget struct {
	NeedMM     float64 `json:"need_mm"`
	RainfallMM float64 `json:"rainfall_mm"`
	DeficitMM  float64 `json:"deficit_mm"`

	// DeficitPercent is rounded to one decimal.
	DeficitPercent float64 `json:"deficit_percent"`
}

// Schedule is a frequency band with its watering interval in days.
// Interval is nil when no irrigation is needed.
type Schedule struct {
	Frequency Frequency `json:"frequency"`
	Interval  *Span     `json:"interval_days,omitempty"`
}

// MethodChoice is a recommended method and its water-use efficiency percentage.
type MethodChoice struct {
	Method     Method `json:"method"`
	Efficiency Span   `json:"efficiency_percent"`
}

// Stage is a growth stage where water supply matters.
type Stage struct {
	Stage    string   `json:"stage"`
	Days     Span     `json:"days"`
	Priority Priority `json:"priority"`
}

// IrrigationPlan is the irrigation advice for one crop at one location.
type IrrigationPlan struct {
	CropID   string       `json:"crop_id"`
	Water    WaterBudget  `json:"water"`
	Schedule Schedule     `json:"schedule"`
	Method   MethodChoice `json:"method"`
	Stages   []Stage      `json:"critical_stages"`
	Advice   []Advice     `json:"advice"`
}

var frequencyIntervals = map[Frequency]Span{
	FrequencyMinimal:  {15, 20},
	FrequencyHigh:     {3, 5},
	FrequencyModerate: {7, 10},
	FrequencyLow:      {12, 15},
}

var methodEfficiency = map[Method]Span{
	MethodFlood:     {40, 50},
	MethodDrip:      {90, 95},
	MethodSprinkler: {70, 80},
}

// stageCalendars are keyed by crop id.
var stageCalendars = map[string][]Stage{
	"rice": {
		{"transplanting", Span{0, 10}, PriorityCritical},
		{"tillering", Span{20, 40}, PriorityHigh},
		{"panicle_initiation", Span{50, 60}, PriorityCritical},
		{"flowering", Span{70, 80}, PriorityCritical},
	},
	"wheat": {
		{"crown_root_initiation", Span{20, 25}, PriorityCritical},
		{"tillering", Span{30, 40}, PriorityHigh},
		{"jointing", Span{60, 70}, PriorityCritical},
		{"flowering", Span{85, 95}, PriorityHigh},
	},
	"cotton": {
		{"germination", Span{0, 15}, PriorityCritical},
		{"flowering", Span{60, 90}, PriorityCritical},
		{"boll_development", Span{90, 120}, PriorityHigh},
	},
	"maize": {
		{"germination", Span{0, 10}, PriorityCritical},
		{"vegetative", Span{30, 45}, PriorityHigh},
		{"tasseling", Span{50, 60}, PriorityCritical},
		{"grain_filling", Span{65, 80}, PriorityCritical},
	},
}

var defaultStageCalendar = []Stage{
	{"germination", Span{0, 15}, PriorityCritical},
	{"vegetative_growth", Span{25, 50}, PriorityHigh},
	{"flowering", Span{50, 70}, PriorityCritical},
	{"fruiting_grain_filling", Span{70, 90}, PriorityHigh},
}

// BuildIrrigationPlan derives the irrigation plan for crop at the profile.
// Missing climate counts as zero rainfall.
func BuildIrrigationPlan(profile *location.Profile, crop *reference.CropRequirement) *IrrigationPlan {
	water := waterBudget(profile, crop)
	schedule := irrigationSchedule(water, crop)

	return &IrrigationPlan{
		CropID:   crop.ID,
		Water:    water,
		Schedule: schedule,
		Method:   irrigationMethod(profile, crop),
		Stages:   CriticalStages(crop.ID),
		Advice:   irrigationAdvice(profile, water, schedule),
	}
}

func waterBudget(profile *location.Profile, crop *reference.CropRequirement) WaterBudget {
	need := crop.WaterMM
	rainfall := profile.Rainfall()
	deficit := math.Max(0, need-rainfall)

	var pct float64
	if need > 0 {
		pct = math.Round(deficit/need*1000) / 10
	}

	return WaterBudget{
		NeedMM:         need,
		RainfallMM:     rainfall,
		DeficitMM:      deficit,
		DeficitPercent: pct,
	}
}

func irrigationSchedule(water WaterBudget, crop *reference.CropRequirement) Schedule {
	var f Frequency
	switch {
	case water.DeficitMM == 0:
		return Schedule{Frequency: FrequencyRainfed}
	case water.DeficitPercent < minimalDeficitPercent:
		f = FrequencyMinimal
	case highWaterTier(crop):
		f = FrequencyHigh
	case tier.Is(crop.WaterRequirement, tier.Medium):
		f = FrequencyModerate
	default:
		f = FrequencyLow
	}

	interval := frequencyIntervals[f]
	return Schedule{Frequency: f, Interval: &interval}
}

func irrigationMethod(profile *location.Profile, crop *reference.CropRequirement) MethodChoice {
	m := MethodSprinkler
	switch {
	case highWaterTier(crop) && paddyCrops[reference.Key(crop.ID)]:
		m = MethodFlood
	case highWaterTier(crop):
		m = MethodDrip
	case profile.Drainage().WellDrained():
		m = MethodDrip
	}
	return MethodChoice{Method: m, Efficiency: methodEfficiency[m]}
}

func irrigationAdvice(profile *location.Profile, water WaterBudget, schedule Schedule) []Advice {
	advice := []Advice{}
	if water.DeficitMM > 0 {
		advice = append(advice, AdviceProtectCriticalStages)
	}
	if schedule.Frequency == FrequencyHigh {
		advice = append(advice, AdviceInstallDrip)
	}
	if profile.HasRisk("Drought") {
		advice = append(advice, AdviceStoreRainwater, AdviceApplyMulch)
	}
	if profile.HasRisk("Floods") {
		advice = append(advice, AdviceEnsureDrainage)
	}
	return advice
}

// CriticalStages returns the stage calendar for a crop id, or the generic
// four-stage calendar. The result is a copy.
func CriticalStages(cropID string) []Stage {
	stages, ok := stageCalendars[reference.Key(cropID)]
	if !ok {
		stages = defaultStageCalendar
	}
	return append([]Stage(nil), stages...)
}

func highWaterTier(crop *reference.CropRequirement) bool {
	t := tier.Parse(crop.WaterRequirement)
	return t == tier.High || t == tier.VeryHigh
}
