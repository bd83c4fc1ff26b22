// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

// Package market rates the market side of growing a crop: profitability from
// demand, opportunity and access; risk from climate, perishability and access;
// and the seasonal demand advantage.
//
// Market records are looked up by crop id through a Lookup, which
// *reference.Catalog satisfies. A crop without a record still gets an
// analysis: profitability falls back to 0.5 ("unknown") and risk is carried by
// climate alone.
//
// Scores are accumulated in integer hundredths (profitability) and thousandths
// (risk) so that rating thresholds are compared exactly.
package market
