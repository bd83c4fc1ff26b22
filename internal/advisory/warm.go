// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package advisory

import (
	"context"
	"fmt"

	"github.com/Romeombugua/e-mkulima/internal/tier"
)

// WarmTargets lists the requests Warm precomputes: the default subregion of
// every region, for every farm size, at the default top-N.
func (s *Service) WarmTargets() []Request {
	regions := s.resolver.Regions()
	targets := make([]Request, 0, len(regions)*len(tier.FarmSizes))
	for _, region := range regions {
		for _, size := range tier.FarmSizes {
			targets = append(targets, Request{Region: region, FarmSize: size})
		}
	}
	return targets
}

// Warm recomputes and memoizes every WarmTargets bundle, replacing stale
// entries. pace is called before each bundle and may block to throttle the
// run; a nil pace runs unthrottled. It returns the number of bundles built.
func (s *Service) Warm(ctx context.Context, pace func(context.Context) error) (int, error) {
	if s.memo == nil {
		return 0, nil
	}

	warmed := 0
	for _, req := range s.WarmTargets() {
		if pace != nil {
			if err := pace(ctx); err != nil {
				return warmed, err
			}
		}
		if err := ctx.Err(); err != nil {
			return warmed, err
		}

		profile := s.resolver.Resolve(req.Region, req.Subregion)
		topN := s.topN(req.TopN)
		b, err := s.buildBundle(ctx, profile, req.FarmSize, topN)
		if err != nil {
			return warmed, fmt.Errorf("warm %s/%s: %w", req.Region, req.FarmSize, err)
		}
		s.remember(memoKey(profile, req.FarmSize, topN), b)
		warmed++
	}

	s.logger.Debug().Int("bundles", warmed).Msg("memo cache warmed")
	return warmed, nil
}
