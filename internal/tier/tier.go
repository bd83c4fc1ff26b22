// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package tier

import "strings"

// Tier is a canonical ordinal label.
type Tier int

// Ordinal tiers. Unknown is the zero value and is treated as Medium by every
// numeric conversion.
const (
	Unknown Tier = iota
	VeryLow
	Low
	Medium
	High
	VeryHigh
)

// labels maps normalized keys to tiers.
var labels = map[string]Tier{
	"very_low":  VeryLow,
	"low":       Low,
	"medium":    Medium,
	"high":      High,
	"very_high": VeryHigh,
}

// nutrientValues is the 0.1..1.0 scale for nutrient and organic matter tiers.
var nutrientValues = map[Tier]float64{
	VeryLow:  0.1,
	Low:      0.3,
	Medium:   0.6,
	High:     0.9,
	VeryHigh: 1.0,
}

// DefaultNutrient is the nutrient value of an unrecognized label.
const DefaultNutrient = 0.5

// DefaultLevel is the level of an unrecognized label.
const DefaultLevel = 3

// Key normalizes a label to lower snake case.
func Key(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return s
}

// Parse returns the tier for label, or Unknown.
func Parse(label string) Tier {
	if t, ok := labels[Key(label)]; ok {
		return t
	}
	return Unknown
}

// Valid reports whether label names one of the five tiers.
func Valid(label string) bool {
	return Parse(label) != Unknown
}

// Level returns the 1..5 ordinal for label.
func Level(label string) int {
	return Parse(label).Level()
}

// Nutrient returns the 0.1..1.0 value for label.
func Nutrient(label string) float64 {
	return Parse(label).Nutrient()
}

// Level returns the 1..5 ordinal, 3 for Unknown.
func (t Tier) Level() int {
	if t == Unknown {
		return DefaultLevel
	}
	return int(t)
}

// Nutrient returns the 0.1..1.0 value, 0.5 for Unknown.
func (t Tier) Nutrient() float64 {
	if v, ok := nutrientValues[t]; ok {
		return v
	}
	return DefaultNutrient
}

// String returns the snake_case key of the tier.
func (t Tier) String() string {
	switch t {
	case VeryLow:
		return "very_low"
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case VeryHigh:
		return "very_high"
	default:
		return "unknown"
	}
}

// Is reports whether label parses to t.
func Is(label string, t Tier) bool {
	return Parse(label) == t
}
