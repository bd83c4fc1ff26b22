// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

// Package agronomy derives irrigation and fertilizer plans for one crop at
// one location.
//
// Both builders are pure and total: missing soil or climate data produces a
// plan with documented defaults, never an error. Plans use stable snake_case
// keys for every category, product and piece of advice so that presentation
// layers can translate them.
//
// # Irrigation
//
// Water deficit is the crop's seasonal need minus average rainfall. The
// deficit percentage (rounded to one decimal) selects a frequency band; the
// crop's water tier and the soil drainage select a method; the crop id
// selects a critical-stage calendar.
//
// # Fertilizer
//
// Nutrient gaps are computed on the 1..5 tier scale. Each of N, P and K gets
// a high, medium or low application tier from its gap, and the sum of
// positive gaps gives a cost band.
package agronomy
