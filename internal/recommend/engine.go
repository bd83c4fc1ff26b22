// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/reference"
)

// ErrStrategyNotRegistered is returned when ranking with a strategy the
// engine does not know.
var ErrStrategyNotRegistered = errors.New("strategy not registered")

// Engine ranks crops with registered strategies and arbitrates between them.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	arbitrator *Arbitrator

	strategies map[StrategyID]Strategy
	order      []StrategyID
	mu         sync.RWMutex
}

// NewEngine creates a new suitability engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:     cfg.Clone(),
		logger:     logger.With().Str("component", "recommend").Logger(),
		arbitrator: NewArbitrator(cfg.ComplexZones),
		strategies: make(map[StrategyID]Strategy),
	}, nil
}

// RegisterStrategy adds or replaces a strategy.
func (e *Engine) RegisterStrategy(s Strategy) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.strategies[s.ID()]; !exists {
		e.order = append(e.order, s.ID())
	}
	e.strategies[s.ID()] = s
	e.logger.Info().
		Str("strategy", string(s.ID())).
		Msg("registered strategy")
}

// Strategies returns registered strategy ids in registration order.
func (e *Engine) Strategies() []StrategyID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]StrategyID(nil), e.order...)
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Arbitrate selects a strategy for the profile without scoring any crop.
func (e *Engine) Arbitrate(profile *location.Profile) ArbitrationDecision {
	return e.arbitrator.Decide(profile)
}

// RankCrops arbitrates between strategies and ranks every crop with the
// winner. The crop slice is not modified. A nil profile ranks like an
// unresolved location.
func (e *Engine) RankCrops(ctx context.Context, profile *location.Profile, farmSize string, crops []reference.CropRequirement) (*Recommendation, error) {
	if profile == nil {
		profile = &location.Profile{}
	}
	decision := e.arbitrator.Decide(profile)

	ranked, err := e.RankWith(ctx, decision.Strategy, profile, farmSize, crops)
	if err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("region", profile.Region).
		Str("subregion", profile.Subregion).
		Str("strategy", string(decision.Strategy)).
		Float64("confidence", decision.Confidence).
		Int("crops", len(ranked)).
		Msg("ranked crops")

	return &Recommendation{Decision: decision, Ranked: ranked}, nil
}

// Compare ranks the crops with every registered strategy and reports which
// one the arbitrator would choose. Each ranking is truncated to topN when
// topN is positive.
func (e *Engine) Compare(ctx context.Context, profile *location.Profile, farmSize string, crops []reference.CropRequirement, topN int) (*Comparison, error) {
	cmp := &Comparison{
		Decision: e.arbitrator.Decide(profile),
		Rankings: make(map[StrategyID][]SuitabilityResult),
	}

	for _, id := range e.Strategies() {
		ranked, err := e.RankWith(ctx, id, profile, farmSize, crops)
		if err != nil {
			return nil, err
		}
		cmp.Rankings[id] = Top(ranked, topN)
	}

	return cmp, nil
}

// RankWith scores every crop with one strategy and sorts by descending score.
// Equal scores keep crop table order.
func (e *Engine) RankWith(ctx context.Context, id StrategyID, profile *location.Profile, farmSize string, crops []reference.CropRequirement) ([]SuitabilityResult, error) {
	e.mu.RLock()
	s, ok := e.strategies[id]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStrategyNotRegistered, id)
	}

	results, err := e.scoreAll(ctx, s, profile, farmSize, crops)
	if err != nil {
		return nil, fmt.Errorf("score crops with %s: %w", id, err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results, nil
}

// scoreAll scores crops in table order, fanning out across workers when the
// table is large enough to benefit.
func (e *Engine) scoreAll(ctx context.Context, s Strategy, profile *location.Profile, farmSize string, crops []reference.CropRequirement) ([]SuitabilityResult, error) {
	results := make([]SuitabilityResult, len(crops))

	if e.config.Workers <= 1 || len(crops) < e.config.ParallelThreshold {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := range crops {
			results[i] = s.Score(&crops[i], profile, farmSize)
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.Workers)
	for i := range crops {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.Score(&crops[i], profile, farmSize)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
