// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

// Package location resolves a (region, subregion) pair into a Profile carrying
// the subregion's soil and climate, and derives the three normalized indices
// every scorer reads.
//
// # Indices
//
//   - SoilNutrientScore: mean nutrient value of N, P, K and organic matter, 0 without soil
//   - WaterAvailability: rainfall/1500 capped at 1, plus a drainage bonus when soil
//     is known, clamped to [0,1]; 0 without climate
//   - ClimateRisk: 0.30 per severe risk tag and 0.15 per other tag, capped at 1;
//     0.5 without climate
//
// # Missing Data
//
// Resolution never fails. An unknown region or subregion yields a Profile with
// nil Soil and Climate, and each index falls back to its documented default.
package location
