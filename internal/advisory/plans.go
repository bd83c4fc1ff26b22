// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package advisory

import (
	"time"

	"github.com/Romeombugua/e-mkulima/internal/agronomy"
	"github.com/Romeombugua/e-mkulima/internal/market"
	"github.com/Romeombugua/e-mkulima/internal/metrics"
	"github.com/Romeombugua/e-mkulima/internal/reference"
)

// IrrigationPlan builds the irrigation plan for one crop at a location.
func (s *Service) IrrigationPlan(region, subregion, cropID string) (*agronomy.IrrigationPlan, error) {
	start := time.Now()
	crop, err := s.crop(cropID)
	metrics.RecordAdvisory(opIrrigation, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return agronomy.BuildIrrigationPlan(s.resolver.Resolve(region, subregion), crop), nil
}

// FertilizerPlan builds the fertilizer plan for one crop at a location.
func (s *Service) FertilizerPlan(region, subregion, cropID string) (*agronomy.FertilizerPlan, error) {
	start := time.Now()
	crop, err := s.crop(cropID)
	metrics.RecordAdvisory(opFertilizer, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return agronomy.BuildFertilizerPlan(s.resolver.Resolve(region, subregion), crop), nil
}

// MarketAnalysis builds the market analysis for one crop at a location.
func (s *Service) MarketAnalysis(region, subregion, cropID string) (*market.Analysis, error) {
	start := time.Now()
	crop, err := s.crop(cropID)
	metrics.RecordAdvisory(opMarket, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return market.BuildAnalysis(crop, s.resolver.Resolve(region, subregion), s.catalog), nil
}

// CompareMarkets analyses the listed crops at a location, most profitable
// first. An empty list compares every crop.
func (s *Service) CompareMarkets(region, subregion string, cropIDs []string) ([]*market.Analysis, error) {
	start := time.Now()

	var crops []reference.CropRequirement
	if len(cropIDs) == 0 {
		crops = s.catalog.Crops()
	} else {
		crops = make([]reference.CropRequirement, 0, len(cropIDs))
		for _, id := range cropIDs {
			crop, err := s.crop(id)
			if err != nil {
				metrics.RecordAdvisory(opMarketCompare, time.Since(start), err)
				return nil, err
			}
			crops = append(crops, *crop)
		}
	}

	out := market.Compare(crops, s.resolver.Resolve(region, subregion), s.catalog)
	metrics.RecordAdvisory(opMarketCompare, time.Since(start), nil)
	return out, nil
}
