// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package advisory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Romeombugua/e-mkulima/internal/agronomy"
	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/market"
	"github.com/Romeombugua/e-mkulima/internal/metrics"
	"github.com/Romeombugua/e-mkulima/internal/recommend"
	"github.com/Romeombugua/e-mkulima/internal/reference"
	"github.com/Romeombugua/e-mkulima/internal/tier"
	"github.com/Romeombugua/e-mkulima/internal/validation"
)

// Request identifies a farm. Subregion defaults to the region's default,
// FarmSize to the configured default and TopN to the configured default.
type Request struct {
	Region    string `json:"region" validate:"required,max=100"`
	Subregion string `json:"subregion,omitempty" validate:"max=100"`
	FarmSize  string `json:"farm_size,omitempty" validate:"omitempty,farmsize"`
	TopN      int    `json:"top_n,omitempty" validate:"gte=0"`
}

// WarningLevel grades a climate warning.
type WarningLevel string

// Warning levels.
const (
	WarningWatchOut WarningLevel = "watch_out"
	WarningBeAware  WarningLevel = "be_aware"
)

// watchOutRisks are the climate risks graded watch_out.
var watchOutRisks = map[string]bool{
	"extreme_heat":   true,
	"severe_drought": true,
	"water_scarcity": true,
}

// Warning is one climate risk of the location. Risk is the tag as written in
// the reference data.
type Warning struct {
	Level WarningLevel `json:"level"`
	Risk  string       `json:"risk"`
}

// Ranking is a location profile with the arbitrated crop ranking.
type Ranking struct {
	Profile       *location.Profile             `json:"profile"`
	Indices       location.Indices              `json:"indices"`
	FarmSize      string                        `json:"farm_size"`
	Decision      recommend.ArbitrationDecision `json:"decision"`
	Justification string                        `json:"justification"`
	Ranked        []recommend.SuitabilityResult `json:"ranked"`
}

// CropPlan is the top crop with every plan built for it.
type CropPlan struct {
	Suitability recommend.SuitabilityResult `json:"suitability"`
	Irrigation  *agronomy.IrrigationPlan    `json:"irrigation"`
	Fertilizer  *agronomy.FertilizerPlan    `json:"fertilizer"`
	Market      *market.Analysis            `json:"market"`
}

// Alternate is a runner-up crop with its market outlook.
type Alternate struct {
	CropID       string            `json:"crop_id"`
	CropName     string            `json:"crop_name"`
	Score        float64           `json:"score"`
	MarketRating market.Rating     `json:"market_rating"`
	RiskRating   market.RiskRating `json:"risk_rating"`
}

// Bundle is the complete advice for one farm. Memoized bundles are shared
// between callers and must not be modified.
type Bundle struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Ranking
	Top        *CropPlan   `json:"top"`
	Alternates []Alternate `json:"alternates"`
	Warnings   []Warning   `json:"warnings"`
}

// StrategyComparison ranks with every strategy side by side.
type StrategyComparison struct {
	Profile       *location.Profile                                       `json:"profile"`
	FarmSize      string                                                  `json:"farm_size"`
	Decision      recommend.ArbitrationDecision                           `json:"decision"`
	Justification string                                                  `json:"justification"`
	Rankings      map[recommend.StrategyID][]recommend.SuitabilityResult `json:"rankings"`
}

// Advise builds the advice bundle for a farm, serving it from the memo cache
// when possible.
func (s *Service) Advise(ctx context.Context, req Request) (*Bundle, error) {
	b, _, err := s.AdviseCached(ctx, req)
	return b, err
}

// AdviseCached is Advise that also reports whether the bundle came from the
// memo cache.
func (s *Service) AdviseCached(ctx context.Context, req Request) (*Bundle, bool, error) {
	start := time.Now()

	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordAdvisory(opAdvise, time.Since(start), verr)
		return nil, false, verr
	}

	profile := s.resolver.Resolve(req.Region, req.Subregion)
	farmSize := s.farmSize(req.FarmSize)
	topN := s.topN(req.TopN)
	key := memoKey(profile, farmSize, topN)

	if s.memo != nil {
		if b, ok := s.memo.Get(key); ok {
			metrics.RecordAdvisoryCached(opAdvise)
			s.logger.Debug().Str("key", key).Msg("bundle served from memo")
			return b, true, nil
		}
		metrics.RecordMemoMiss()
	}

	b, err := s.buildBundle(ctx, profile, farmSize, topN)
	metrics.RecordAdvisory(opAdvise, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	s.remember(key, b)
	return b, false, nil
}

// remember stores a bundle in the memo cache.
func (s *Service) remember(key string, b *Bundle) {
	if s.memo == nil {
		return
	}
	s.memo.Add(key, b)
	metrics.SetMemoEntries(s.memo.Len())
}

func (s *Service) buildBundle(ctx context.Context, profile *location.Profile, farmSize string, topN int) (*Bundle, error) {
	crops := s.catalog.Crops()
	if len(crops) == 0 {
		return nil, ErrNoCrops
	}

	ranking, err := s.rank(ctx, profile, farmSize, crops)
	if err != nil {
		return nil, err
	}
	full := ranking.Ranked
	ranking.Ranked = recommend.Top(full, topN)

	top, err := s.crop(full[0].CropID)
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Ranking:     *ranking,
		Top: &CropPlan{
			Suitability: full[0],
			Irrigation:  agronomy.BuildIrrigationPlan(profile, top),
			Fertilizer:  agronomy.BuildFertilizerPlan(profile, top),
			Market:      market.BuildAnalysis(top, profile, s.catalog),
		},
		Alternates: s.alternates(profile, full),
		Warnings:   ClimateWarnings(profile),
	}

	s.logger.Debug().
		Str("region", profile.Region).
		Str("subregion", profile.Subregion).
		Str("farm_size", farmSize).
		Str("top_crop", top.ID).
		Msg("built advice bundle")

	return b, nil
}

// alternates takes the runners-up after the top crop.
func (s *Service) alternates(profile *location.Profile, ranked []recommend.SuitabilityResult) []Alternate {
	out := []Alternate{}
	for i := 1; i < len(ranked) && len(out) < s.config.Alternates; i++ {
		r := ranked[i]
		crop, ok := s.catalog.Crop(r.CropID)
		if !ok {
			continue
		}
		a := market.BuildAnalysis(&crop, profile, s.catalog)
		out = append(out, Alternate{
			CropID:       r.CropID,
			CropName:     r.CropName,
			Score:        r.Score,
			MarketRating: a.Profitability.Rating,
			RiskRating:   a.Risk.Rating,
		})
	}
	return out
}

// ClimateWarnings grades each climate risk of the profile in tag order.
func ClimateWarnings(profile *location.Profile) []Warning {
	warnings := []Warning{}
	if !profile.HasClimate() {
		return warnings
	}
	for _, risk := range profile.Climate.Risks {
		level := WarningBeAware
		if watchOutRisks[tier.Key(risk)] {
			level = WarningWatchOut
		}
		warnings = append(warnings, Warning{Level: level, Risk: risk})
	}
	return warnings
}

// Rank resolves the location and ranks every crop with the arbitrated
// strategy. The ranking is truncated to topN, with 0 selecting the default.
func (s *Service) Rank(ctx context.Context, req Request) (*Ranking, error) {
	start := time.Now()
	ranking, err := s.rankRequest(ctx, req)
	metrics.RecordAdvisory(opRank, time.Since(start), err)
	return ranking, err
}

func (s *Service) rankRequest(ctx context.Context, req Request) (*Ranking, error) {
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, verr
	}

	profile := s.resolver.Resolve(req.Region, req.Subregion)
	ranking, err := s.rank(ctx, profile, s.farmSize(req.FarmSize), s.catalog.Crops())
	if err != nil {
		return nil, err
	}
	ranking.Ranked = recommend.Top(ranking.Ranked, s.topN(req.TopN))
	return ranking, nil
}

func (s *Service) rank(ctx context.Context, profile *location.Profile, farmSize string, crops []reference.CropRequirement) (*Ranking, error) {
	rec, err := s.engine.RankCrops(ctx, profile, farmSize, crops)
	if err != nil {
		return nil, fmt.Errorf("rank crops: %w", err)
	}

	metrics.RecordArbitration(string(rec.Decision.Strategy), rec.Decision.Confidence)
	metrics.RecordCropsScored(string(rec.Decision.Strategy), len(rec.Ranked))

	return &Ranking{
		Profile:       profile,
		Indices:       profile.Indices(),
		FarmSize:      farmSize,
		Decision:      rec.Decision,
		Justification: rec.Decision.Justification(),
		Ranked:        rec.Ranked,
	}, nil
}

// CompareStrategies ranks the crops with every registered strategy, each
// truncated to topN, alongside the arbitration decision.
func (s *Service) CompareStrategies(ctx context.Context, req Request) (*StrategyComparison, error) {
	start := time.Now()
	cmp, err := s.compareStrategies(ctx, req)
	metrics.RecordAdvisory(opCompare, time.Since(start), err)
	return cmp, err
}

func (s *Service) compareStrategies(ctx context.Context, req Request) (*StrategyComparison, error) {
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, verr
	}

	profile := s.resolver.Resolve(req.Region, req.Subregion)
	farmSize := s.farmSize(req.FarmSize)
	crops := s.catalog.Crops()

	cmp, err := s.engine.Compare(ctx, profile, farmSize, crops, s.topN(req.TopN))
	if err != nil {
		return nil, fmt.Errorf("compare strategies: %w", err)
	}
	for id := range cmp.Rankings {
		metrics.RecordCropsScored(string(id), len(crops))
	}

	return &StrategyComparison{
		Profile:       profile,
		FarmSize:      farmSize,
		Decision:      cmp.Decision,
		Justification: cmp.Decision.Justification(),
		Rankings:      cmp.Rankings,
	}, nil
}
