// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

// Package reference holds the read-only lookup tables consumed by the
// suitability engine: crop requirements, regions with their agro-ecological
// subregions, per-subregion soil and climate profiles, and market conditions.
//
// # Loading
//
// The tables ship as YAML embedded in the binary. LoadDir reads the same three
// files (crops.yaml, locations.yaml, markets.yaml) from a directory so that an
// operator can replace the data without rebuilding:
//
//	cat, err := reference.LoadEmbedded()
//	cat, err := reference.LoadDir("/var/lib/emkulima")
//
// Every load runs structural validation and fails with a *ValidationError
// listing all problems found. Missing soil or climate blocks are not errors;
// consumers degrade gracefully when a profile is absent.
//
// # Lookups
//
// Region, subregion and crop lookups accept the canonical name or any spelling
// that normalizes to the same key ("North Kordofan", "north_kordofan").
// A Catalog is immutable after construction and safe for concurrent use.
package reference
