// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

/*
Package cache provides a thread-safe, typed LRU cache with optional TTL.

The advisory service memoizes recommendation bundles keyed by
(region, subregion, farm size, top-N, alternates). Bundles are pure functions
of the reference catalog, so entries never go stale while the process runs;
the TTL exists for deployments that reload reference data from disk.

# Overview

The cache provides:
  - O(1) Get, Add and Remove using a map plus a doubly-linked list
  - O(1) eviction of the least recently used entry at capacity
  - Lazy TTL expiration on Get, plus CleanupExpired for sweeps
  - Hit and miss counters for metrics

# Usage Example

	c := cache.NewLRU[*advisory.Bundle](1024, 0)
	c.Add(key, bundle)
	if b, ok := c.Get(key); ok {
	    return b
	}

# Thread Safety

All methods are safe for concurrent use. Get takes the write lock because it
reorders the recency list.
*/
package cache
