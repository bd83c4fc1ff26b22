// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package advisory

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Romeombugua/e-mkulima/internal/cache"
	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/metrics"
	"github.com/Romeombugua/e-mkulima/internal/recommend"
	"github.com/Romeombugua/e-mkulima/internal/recommend/strategies"
	"github.com/Romeombugua/e-mkulima/internal/reference"
	"github.com/Romeombugua/e-mkulima/internal/tier"
)

var (
	// ErrUnknownCrop is returned when a crop id is not in the reference table.
	ErrUnknownCrop = errors.New("unknown crop")

	// ErrNoCrops is returned when the reference table has no crops to rank.
	ErrNoCrops = errors.New("no crops in reference data")
)

// Operation labels for metrics.
const (
	opAdvise        = "advise"
	opRank          = "rank"
	opCompare       = "compare"
	opIrrigation    = "irrigation"
	opFertilizer    = "fertilizer"
	opMarket        = "market"
	opMarketCompare = "market_compare"
)

// Config controls bundle assembly and memoization.
type Config struct {
	// DefaultTopN is used when a request does not set TopN.
	DefaultTopN int `json:"default_top_n"`

	// MaxTopN caps TopN.
	MaxTopN int `json:"max_top_n"`

	// Alternates is the number of runner-up crops in a bundle.
	Alternates int `json:"alternates"`

	// DefaultFarmSize is used when a request does not set FarmSize.
	DefaultFarmSize string `json:"default_farm_size"`

	Memoize      bool          `json:"memoize"`
	MemoCapacity int           `json:"memo_capacity"`
	MemoTTL      time.Duration `json:"memo_ttl"`
}

// DefaultConfig returns the advisory defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultTopN:     5,
		MaxTopN:         50,
		Alternates:      3,
		DefaultFarmSize: "small",
		Memoize:         true,
		MemoCapacity:    cache.DefaultCapacity,
	}
}

// Validate checks that configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if c.MaxTopN < 1 {
		return fmt.Errorf("max_top_n must be positive, got %d", c.MaxTopN)
	}
	if c.DefaultTopN < 1 || c.DefaultTopN > c.MaxTopN {
		return fmt.Errorf("default_top_n must be between 1 and %d, got %d", c.MaxTopN, c.DefaultTopN)
	}
	if c.Alternates < 0 {
		return fmt.Errorf("alternates must not be negative, got %d", c.Alternates)
	}
	if !tier.ValidFarmSize(c.DefaultFarmSize) {
		return fmt.Errorf("default_farm_size %q is not a farm size", c.DefaultFarmSize)
	}
	if c.Memoize && c.MemoCapacity < 1 {
		return fmt.Errorf("memo_capacity must be positive when memoizing, got %d", c.MemoCapacity)
	}
	if c.MemoTTL < 0 {
		return fmt.Errorf("memo_ttl must not be negative, got %v", c.MemoTTL)
	}
	return nil
}

// NewEngine creates a suitability engine with both scoring strategies registered.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *recommend.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	engine, err := recommend.NewEngine(cfg, logger)
	if err != nil {
		return nil, err
	}
	engine.RegisterStrategy(strategies.NewWeightedSum())
	engine.RegisterStrategy(strategies.NewRuleCascade())
	return engine, nil
}

// Service answers advisory requests against one reference catalog.
// It is safe for concurrent use.
type Service struct {
	catalog  *reference.Catalog
	resolver *location.Resolver
	engine   *recommend.Engine
	config   Config
	logger   zerolog.Logger

	// memo is nil when memoization is disabled.
	memo *cache.LRU[*Bundle]
}

// NewService creates an advisory service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(catalog *reference.Catalog, engine *recommend.Engine, cfg *Config, logger zerolog.Logger) (*Service, error) {
	if catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Service{
		catalog:  catalog,
		resolver: location.NewResolver(catalog),
		engine:   engine,
		config:   *cfg,
		logger:   logger.With().Str("component", "advisory").Logger(),
	}
	if cfg.Memoize {
		s.memo = cache.NewLRU[*Bundle](cfg.MemoCapacity, cfg.MemoTTL)
	}

	metrics.SetReferenceEntries(catalog.CropCount(), len(catalog.Regions()), catalog.SubregionCount(), len(catalog.Markets()))
	return s, nil
}

// Catalog returns the reference catalog the service reads from.
func (s *Service) Catalog() *reference.Catalog {
	return s.catalog
}

// Resolver returns the location resolver.
func (s *Service) Resolver() *location.Resolver {
	return s.resolver
}

// Engine returns the suitability engine.
func (s *Service) Engine() *recommend.Engine {
	return s.engine
}

// Profile resolves a location.
func (s *Service) Profile(region, subregion string) *location.Profile {
	return s.resolver.Resolve(region, subregion)
}

// MemoStats reports memo cache statistics. The zero value is returned when
// memoization is disabled.
func (s *Service) MemoStats() cache.Stats {
	if s.memo == nil {
		return cache.Stats{}
	}
	return s.memo.Stats()
}

// ClearMemo drops every memoized bundle.
func (s *Service) ClearMemo() {
	if s.memo == nil {
		return
	}
	s.memo.Clear()
	metrics.SetMemoEntries(0)
}

// topN applies the default and the cap.
func (s *Service) topN(requested int) int {
	if requested <= 0 {
		return s.config.DefaultTopN
	}
	return min(requested, s.config.MaxTopN)
}

// farmSize applies the default to an empty farm size.
func (s *Service) farmSize(requested string) string {
	if strings.TrimSpace(requested) == "" {
		return s.config.DefaultFarmSize
	}
	return requested
}

// memoKey identifies a bundle. The profile names are already canonical.
func memoKey(profile *location.Profile, farmSize string, topN int) string {
	return strings.Join([]string{
		reference.Key(profile.Region),
		reference.Key(profile.Subregion),
		tier.ParseFarmSize(farmSize).String(),
		strconv.Itoa(topN),
	}, "|")
}

// crop looks up a crop or returns ErrUnknownCrop.
func (s *Service) crop(id string) (*reference.CropRequirement, error) {
	c, ok := s.catalog.Crop(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCrop, id)
	}
	return &c, nil
}
