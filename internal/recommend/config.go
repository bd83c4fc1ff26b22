// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package recommend

import (
	"fmt"
)

// Config contains all configuration for the suitability engine.
type Config struct {
	// Workers bounds concurrent per-crop scoring. 1 disables fan-out.
	Workers int `json:"workers"`

	// ParallelThreshold is the crop count at or above which scoring fans out.
	// The bundled table is small enough that the default keeps it sequential.
	ParallelThreshold int `json:"parallel_threshold"`

	// ComplexZones lists subregions where pattern-based scoring is preferred
	// by the arbitrator.
	ComplexZones []string `json:"complex_zones"`
}

// DefaultComplexZones are the zones the arbitrator treats as complex.
var DefaultComplexZones = []string{"Western Ghats", "Hill Zone", "Coastal Zone", "Terai"}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Workers:           4,
		ParallelThreshold: 64,
		ComplexZones:      append([]string(nil), DefaultComplexZones...),
	}
}

// Validate checks that configuration values are within acceptable ranges.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.ParallelThreshold < 1 {
		return fmt.Errorf("parallel_threshold must be positive, got %d", c.ParallelThreshold)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.ComplexZones = append([]string(nil), c.ComplexZones...)
	return &clone
}
