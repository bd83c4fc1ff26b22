// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/Romeombugua/e-mkulima/internal/metrics"
)

// Warmer rebuilds memoized advice. pace is called before each bundle.
// Satisfied by *advisory.Service.
type Warmer interface {
	Warm(ctx context.Context, pace func(context.Context) error) (int, error)
}

// WarmerServiceConfig holds configuration for the warmer service.
type WarmerServiceConfig struct {
	// WarmOnStartup runs a pass as soon as the service starts.
	WarmOnStartup bool

	// Interval between passes. Default: 1h
	Interval time.Duration

	// Rate limits bundles per second. Zero or negative disables pacing.
	Rate float64

	// RunTimeout bounds one pass. Default: 10m
	RunTimeout time.Duration
}

// WarmerService keeps the advice memo hot for every region and farm size.
type WarmerService struct {
	warmer  Warmer
	config  WarmerServiceConfig
	limiter *rate.Limiter
	logger  zerolog.Logger
	name    string
}

// NewWarmerService creates a warmer service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewWarmerService(warmer Warmer, cfg WarmerServiceConfig, logger zerolog.Logger) *WarmerService {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = 10 * time.Minute
	}

	limit := rate.Inf
	if cfg.Rate > 0 {
		limit = rate.Limit(cfg.Rate)
	}

	return &WarmerService{
		warmer:  warmer,
		config:  cfg,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger.With().Str("service", "memo-warmer").Logger(),
		name:    "memo-warmer",
	}
}

// Serve implements suture.Service. A failed pass is logged and retried on the
// next tick.
func (s *WarmerService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("warm_on_startup", s.config.WarmOnStartup).
		Dur("interval", s.config.Interval).
		Float64("rate", s.config.Rate).
		Msg("memo warmer starting")

	if s.config.WarmOnStartup {
		s.run(ctx)
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("memo warmer shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.run(ctx)
		}
	}
}

// RunOnce performs one warming pass and returns the number of bundles built.
func (s *WarmerService) RunOnce(ctx context.Context) (int, error) {
	runCtx, cancel := context.WithTimeout(ctx, s.config.RunTimeout)
	defer cancel()

	n, err := s.warmer.Warm(runCtx, s.limiter.Wait)
	metrics.RecordWarmRun(err)
	return n, err
}

func (s *WarmerService) run(ctx context.Context) {
	start := time.Now()
	n, err := s.RunOnce(ctx)

	switch {
	case err == nil:
		s.logger.Info().Int("bundles", n).Dur("duration", time.Since(start)).Msg("memo warmed")
	case errors.Is(err, context.Canceled):
		s.logger.Debug().Int("bundles", n).Msg("memo warming interrupted")
	default:
		s.logger.Warn().Err(err).Int("bundles", n).Msg("memo warming failed (will retry on schedule)")
	}
}

// String implements fmt.Stringer for suture's event log.
func (s *WarmerService) String() string {
	return s.name
}
