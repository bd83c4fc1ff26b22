// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package tier

// FarmSize is an ordinal farm size class.
type FarmSize int

// Farm size classes.
const (
	FarmSizeUnknown FarmSize = iota
	FarmVerySmall
	FarmSmall
	FarmMedium
	FarmLarge
	FarmVeryLarge
)

var farmSizeLabels = map[string]FarmSize{
	"very_small": FarmVerySmall,
	"small":      FarmSmall,
	"medium":     FarmMedium,
	"large":      FarmLarge,
	"very_large": FarmVeryLarge,
}

// FarmSizes lists the accepted farm size keys in ascending order.
var FarmSizes = []string{"very_small", "small", "medium", "large", "very_large"}

// ParseFarmSize returns the farm size class for label, or FarmSizeUnknown.
func ParseFarmSize(label string) FarmSize {
	return farmSizeLabels[Key(label)]
}

// ValidFarmSize reports whether label names a farm size class.
func ValidFarmSize(label string) bool {
	return ParseFarmSize(label) != FarmSizeUnknown
}

// Rank returns the 1..5 ordinal, 3 (medium) for FarmSizeUnknown.
func (f FarmSize) Rank() int {
	if f == FarmSizeUnknown {
		return int(FarmMedium)
	}
	return int(f)
}

// String returns the snake_case key of the class.
func (f FarmSize) String() string {
	if f < FarmVerySmall || f > FarmVeryLarge {
		return "unknown"
	}
	return FarmSizes[f-1]
}

// FarmSizeAtLeast reports whether farm meets the minimum size label.
func FarmSizeAtLeast(farm, minimum string) bool {
	return ParseFarmSize(farm).Rank() >= ParseFarmSize(minimum).Rank()
}
