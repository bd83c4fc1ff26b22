// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

// Package recommend ranks crops by suitability for a location profile.
//
// # Architecture
//
// Two hand-authored scoring strategies share one call shape (Strategy):
//
//   - weighted_sum: five sub-scores combined by fixed weights and passed
//     through a logistic squash
//   - rule_cascade: five nested rule functions combined by fixed feature
//     importances, with the top three factors reported
//
// Neither strategy is trained; both are fixed heuristics. The implementations
// live in the strategies subpackage.
//
// # Arbitration
//
// For each request the Arbitrator scores how applicable each strategy is to
// the location (data completeness, climate risk, soil complexity, water
// extremity, zone complexity) and selects one. The confidence it reports is
// the absolute difference of the two applicability totals in percentage
// points. It is not a calibrated probability.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	engine.RegisterStrategy(strategies.NewWeightedSum())
//	engine.RegisterStrategy(strategies.NewRuleCascade())
//
//	rec, err := engine.RankCrops(ctx, profile, "small", catalog.Crops())
//
// # Determinism
//
// Every operation is a pure function of its inputs. Rankings are sorted by
// descending score with ties kept in crop table order, whether crops were
// scored sequentially or fanned out across workers.
//
// # Thread Safety
//
// The engine is safe for concurrent use. Strategy registration takes a write
// lock; ranking takes a read lock.
package recommend
