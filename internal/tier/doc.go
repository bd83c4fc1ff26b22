// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

// Package tier converts ordinal tier labels (Very Low ... Very High) into the
// numeric scales used by the scoring and planning packages.
//
// # Scales
//
//   - Level: integer 1..5, used for nutrient gaps and rule comparisons
//   - Nutrient: fraction 0.1..1.0, used for nutrient indices and ratios
//   - FarmSize: integer 1..5 for Very Small ... Very Large farms
//
// Labels are matched case-insensitively and accept spaces, underscores or
// hyphens as separators, so "Very High", "very_high" and "very-high" are the
// same tier. Any label that does not parse falls back to Medium, which is
// level 3 and nutrient value 0.5.
package tier
