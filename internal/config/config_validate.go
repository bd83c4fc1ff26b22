// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Romeombugua/e-mkulima/internal/logging"
)

// Rate limit bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Engine bounds
const (
	maxWorkers = 256
	maxTopN    = 500
)

var validEnvironments = map[string]bool{
	"development": true,
	"production":  true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks the configuration, returning the first problem found.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateSecurity,
		c.validateEngine,
		c.validateCache,
		c.validateWarmer,
		c.validateData,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, production")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a known level", c.Logging.Level)
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, o := range c.Security.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateEngine() error {
	e := c.Engine
	if e.Workers < 1 || e.Workers > maxWorkers {
		return fmt.Errorf("ENGINE_WORKERS must be between 1 and %d", maxWorkers)
	}
	if e.ParallelThreshold < 1 {
		return fmt.Errorf("ENGINE_PARALLEL_THRESHOLD must be at least 1")
	}
	if e.MaxTopN < 1 || e.MaxTopN > maxTopN {
		return fmt.Errorf("ENGINE_MAX_TOP_N must be between 1 and %d", maxTopN)
	}
	if e.DefaultTopN < 1 || e.DefaultTopN > e.MaxTopN {
		return fmt.Errorf("ENGINE_DEFAULT_TOP_N must be between 1 and ENGINE_MAX_TOP_N (%d)", e.MaxTopN)
	}
	if e.Alternates < 0 || e.Alternates >= e.MaxTopN {
		return fmt.Errorf("ENGINE_ALTERNATES must be between 0 and %d", e.MaxTopN-1)
	}
	for _, z := range e.ComplexZones {
		if strings.TrimSpace(z) == "" {
			return fmt.Errorf("ENGINE_COMPLEX_ZONES must not contain empty names")
		}
	}
	return nil
}

func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("CACHE_CAPACITY must be at least 1 when caching is enabled")
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative")
	}
	return nil
}

func (c *Config) validateWarmer() error {
	if !c.Warmer.Enabled {
		return nil
	}
	if !c.Cache.Enabled {
		return fmt.Errorf("WARMER_ENABLED requires CACHE_ENABLED")
	}
	if c.Warmer.Interval < time.Minute {
		return fmt.Errorf("WARMER_INTERVAL must be at least 1m")
	}
	if c.Warmer.Rate < 0 {
		return fmt.Errorf("WARMER_RATE must not be negative")
	}
	return nil
}

func (c *Config) validateData() error {
	if c.Data.Dir == "" {
		return nil
	}
	info, err := os.Stat(c.Data.Dir)
	if err != nil {
		return fmt.Errorf("DATA_DIR %q: %w", c.Data.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("DATA_DIR %q is not a directory", c.Data.Dir)
	}
	return nil
}
