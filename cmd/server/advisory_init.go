// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Romeombugua/e-mkulima/internal/advisory"
	"github.com/Romeombugua/e-mkulima/internal/config"
	"github.com/Romeombugua/e-mkulima/internal/recommend"
	"github.com/Romeombugua/e-mkulima/internal/reference"
	"github.com/Romeombugua/e-mkulima/internal/supervisor/services"
)

// initAdvisory loads the reference tables and builds the advisory service.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initAdvisory(cfg *config.Config, logger zerolog.Logger) (*advisory.Service, error) {
	catalog, err := loadCatalog(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int("crops", catalog.CropCount()).
		Int("regions", len(catalog.Regions())).
		Int("subregions", catalog.SubregionCount()).
		Int("markets", len(catalog.Markets())).
		Msg("Reference data loaded")

	engine, err := advisory.NewEngine(buildEngineConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("create suitability engine: %w", err)
	}

	service, err := advisory.NewService(catalog, engine, buildAdvisoryConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("create advisory service: %w", err)
	}
	return service, nil
}

func loadCatalog(dir string) (*reference.Catalog, error) {
	if dir == "" {
		catalog, err := reference.LoadEmbedded()
		if err != nil {
			return nil, fmt.Errorf("load embedded reference data: %w", err)
		}
		return catalog, nil
	}
	catalog, err := reference.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load reference data from %s: %w", dir, err)
	}
	return catalog, nil
}

func buildEngineConfig(cfg *config.Config) *recommend.Config {
	engineCfg := recommend.DefaultConfig()
	if cfg.Engine.Workers > 0 {
		engineCfg.Workers = cfg.Engine.Workers
	}
	if cfg.Engine.ParallelThreshold > 0 {
		engineCfg.ParallelThreshold = cfg.Engine.ParallelThreshold
	}
	if len(cfg.Engine.ComplexZones) > 0 {
		engineCfg.ComplexZones = append([]string(nil), cfg.Engine.ComplexZones...)
	}
	return engineCfg
}

func buildAdvisoryConfig(cfg *config.Config) *advisory.Config {
	advCfg := advisory.DefaultConfig()
	if cfg.Engine.DefaultTopN > 0 {
		advCfg.DefaultTopN = cfg.Engine.DefaultTopN
	}
	if cfg.Engine.MaxTopN > 0 {
		advCfg.MaxTopN = cfg.Engine.MaxTopN
	}
	if cfg.Engine.Alternates >= 0 {
		advCfg.Alternates = cfg.Engine.Alternates
	}
	advCfg.Memoize = cfg.Cache.Enabled
	if cfg.Cache.Capacity > 0 {
		advCfg.MemoCapacity = cfg.Cache.Capacity
	}
	advCfg.MemoTTL = cfg.Cache.TTL
	return advCfg
}

// initWarmer returns nil when the warmer is disabled or has no cache to fill.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initWarmer(cfg *config.Config, service *advisory.Service, logger zerolog.Logger) *services.WarmerService {
	if !cfg.Warmer.Enabled {
		logger.Info().Msg("Memo warmer disabled (WARMER_ENABLED=false)")
		return nil
	}
	if !cfg.Cache.Enabled {
		logger.Warn().Msg("Memo warmer enabled but memoization is off; warmer not started")
		return nil
	}
	return services.NewWarmerService(service, services.WarmerServiceConfig{
		WarmOnStartup: true,
		Interval:      cfg.Warmer.Interval,
		Rate:          cfg.Warmer.Rate,
	}, logger)
}
