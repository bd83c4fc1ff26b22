// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package tier

// Drainage is a soil drainage class.
type Drainage int

// Drainage classes.
const (
	DrainageUnknown Drainage = iota
	DrainagePoor
	DrainageModerate
	DrainageGood
	DrainageExcellent
)

var drainageLabels = map[string]Drainage{
	"poor":      DrainagePoor,
	"moderate":  DrainageModerate,
	"good":      DrainageGood,
	"excellent": DrainageExcellent,
}

// drainageBonus adjusts water availability for how well soil holds water.
var drainageBonus = map[Drainage]float64{
	DrainageExcellent: 0.10,
	DrainageGood:      0.05,
	DrainageModerate:  0,
	DrainagePoor:      -0.10,
}

// expectedDrainage is the drainage class each water requirement tier grows best in.
var expectedDrainage = map[Tier]Drainage{
	VeryHigh: DrainagePoor,
	High:     DrainageModerate,
	Medium:   DrainageGood,
	Low:      DrainageGood,
	VeryLow:  DrainageExcellent,
}

// ParseDrainage returns the drainage class for label, or DrainageUnknown.
func ParseDrainage(label string) Drainage {
	return drainageLabels[Key(label)]
}

// Bonus returns the water availability adjustment for the class.
func (d Drainage) Bonus() float64 {
	return drainageBonus[d]
}

// WellDrained reports whether the class is Good or Excellent.
func (d Drainage) WellDrained() bool {
	return d == DrainageGood || d == DrainageExcellent
}

// String returns the snake_case key of the class.
func (d Drainage) String() string {
	switch d {
	case DrainagePoor:
		return "poor"
	case DrainageModerate:
		return "moderate"
	case DrainageGood:
		return "good"
	case DrainageExcellent:
		return "excellent"
	default:
		return "unknown"
	}
}

// ExpectedDrainage returns the drainage class suited to a water requirement
// label. Unrecognized labels have no expected class.
func ExpectedDrainage(waterRequirement string) Drainage {
	return expectedDrainage[Parse(waterRequirement)]
}
