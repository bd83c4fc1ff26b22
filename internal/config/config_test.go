// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }, "HTTP_READ_TIMEOUT"},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "SHUTDOWN_TIMEOUT"},
		{"staging environment", func(c *Config) { c.Server.Environment = "staging" }, "ENVIRONMENT"},
		{"xml log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"console log format", func(c *Config) { c.Logging.Format = "Console" }, ""},
		{"no cors origins", func(c *Config) { c.Security.CORSOrigins = nil }, "CORS_ORIGINS"},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"tiny rate window", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"too many workers", func(c *Config) { c.Engine.Workers = 1000 }, "ENGINE_WORKERS"},
		{"zero threshold", func(c *Config) { c.Engine.ParallelThreshold = 0 }, "ENGINE_PARALLEL_THRESHOLD"},
		{"zero max top-n", func(c *Config) { c.Engine.MaxTopN = 0 }, "ENGINE_MAX_TOP_N"},
		{"zero default top-n", func(c *Config) { c.Engine.DefaultTopN = 0 }, "ENGINE_DEFAULT_TOP_N"},
		{"negative alternates", func(c *Config) { c.Engine.Alternates = -1 }, "ENGINE_ALTERNATES"},
		{"blank zone", func(c *Config) { c.Engine.ComplexZones = []string{"Terai", " "} }, "ENGINE_COMPLEX_ZONES"},
		{"empty zone list", func(c *Config) { c.Engine.ComplexZones = nil }, ""},
		{"zero capacity", func(c *Config) { c.Cache.Capacity = 0 }, "CACHE_CAPACITY"},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Second }, "CACHE_TTL"},
		{"cache off with warmer off", func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.Capacity = 0
			c.Warmer.Enabled = false
		}, ""},
		{"fast warmer", func(c *Config) { c.Warmer.Interval = time.Second }, "WARMER_INTERVAL"},
		{"negative warmer rate", func(c *Config) { c.Warmer.Rate = -1 }, "WARMER_RATE"},
		{"data dir is a file", func(c *Config) { c.Data.Dir = "config.go" }, "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestHasWildcardCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("HasWildcardCORS() = false for default *")
	}
	cfg.Security.CORSOrigins = []string{"https://emkulima.example"}
	if cfg.HasWildcardCORS() {
		t.Error("HasWildcardCORS() = true for explicit origin")
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "::1", Port: 9090}
	if got := s.Addr(); got != "[::1]:9090" {
		t.Errorf("Addr() = %q, want [::1]:9090", got)
	}
}
