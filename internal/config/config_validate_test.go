// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package config

import (
	"testing"
	"time"
)

func TestValidateRateLimits(t *testing.T) {
	tests := []struct {
		name     string
		reqs     int
		window   time.Duration
		disabled bool
		wantErr  bool
	}{
		{"defaults", 100, time.Minute, false, false},
		{"zero requests", 0, time.Minute, false, true},
		{"too many requests", 100001, time.Minute, false, true},
		{"window too short", 10, 500 * time.Millisecond, false, true},
		{"window too long", 10, 2 * time.Hour, false, true},
		{"disabled skips checks", 0, 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			cfg.Security.RateLimitReqs = tt.reqs
			cfg.Security.RateLimitWindow = tt.window
			cfg.Security.RateLimitDisabled = tt.disabled

			err := cfg.validateRateLimits()
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRateLimits() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateImport(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero batch", func(c *Config) { c.Import.BatchSize = 0 }, true},
		{"negative votes", func(c *Config) { c.Import.MinVoteCount = -1 }, true},
		{"auto start without debug", func(c *Config) { c.Import.AutoStart = true }, true},
		{"auto start without data dir", func(c *Config) {
			c.Server.Debug = true
			c.Import.AutoStart = true
			c.Import.DataDir = " "
		}, true},
		{"auto start with debug", func(c *Config) {
			c.Server.Debug = true
			c.Import.AutoStart = true
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.validateImport()
			if (err != nil) != tt.wantErr {
				t.Errorf("validateImport() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDatabase(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() with empty database path should fail")
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	cfg := defaultConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("ShouldWarnAboutCORS() = true for default origins, want false")
	}
	cfg.Security.CORSOrigins = []string{"https://a.example", "*"}
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("ShouldWarnAboutCORS() = false with wildcard, want true")
	}
}
