// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

// Package strategies provides the two crop suitability scorers.
//
// # WeightedSum
//
// Five additive sub-scores (soil, climate, water, nutrients, farm_size)
// weighted 0.30/0.25/0.20/0.15/0.10. The raw sum is squashed with
// 1/(1+e^(-8(raw-0.5))) and bucketed into a yield band.
//
// # RuleCascade
//
// Five nested rule functions (soil, water, temperature, nutrients,
// climate_risk) weighted 0.25/0.22/0.20/0.18/0.15. The result carries the
// three factors with the largest weighted influence.
//
// Both strategies degrade when soil or climate data is missing instead of
// failing. Every sub-score lies in [0,1].
package strategies
