// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

/*
Package advisory assembles farm advice from the suitability engine and the
plan generators.

A Service resolves the location, ranks the crop table with the strategy the
arbitrator selects, and builds a Bundle: the top crop with its irrigation,
fertilizer and market plans, a short list of alternates with their market
and risk ratings, and warnings derived from the location's climate risks.

Bundles depend only on (region, subregion, farm size, top-N), so the Service
memoizes them in an LRU. A background warmer can precompute the default
subregion of every region for every farm size with Warm.

Usage:

	engine, _ := advisory.NewEngine(recommend.DefaultConfig(), logger)
	svc, _ := advisory.NewService(catalog, engine, advisory.DefaultConfig(), logger)

	bundle, err := svc.Advise(ctx, advisory.Request{
	    Region:   "Gezira",
	    FarmSize: "medium",
	})

Errors:

  - ErrUnknownCrop: a per-crop plan was requested for a crop id that is not
    in the reference table.
  - ErrNoCrops: the reference table holds no crops, so no bundle can be built.
  - *validation.RequestValidationError: the request failed field validation.

Unknown regions and subregions are not errors; they resolve to a profile
without soil or climate and every score degrades accordingly.
*/
package advisory
