// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

// Package config loads MovieSoup configuration.
//
// Values are layered with koanf: struct defaults first, then an optional
// YAML file, then environment variables. See LoadWithKoanf.
package config

import "time"

// Config is the complete application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Import    ImportConfig    `koanf:"import"`
	Security  SecurityConfig  `koanf:"security"`
	Cache     CacheConfig     `koanf:"cache"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`

	// Debug enables the bulk import endpoint and the import auto-start
	// service. Never enable it on a public deployment.
	Debug bool `koanf:"debug"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// CandidateBudget is split evenly across favourites: each favourite
	// contributes at most CandidateBudget/len(favourites) neighbours.
	CandidateBudget int `koanf:"candidate_budget"`

	// MaxResults caps the merged recommendation list.
	MaxResults int `koanf:"max_results"`

	// Timeout bounds one recommendation request at the HTTP layer.
	Timeout time.Duration `koanf:"timeout"`
}

// ImportConfig holds TMDB CSV import settings.
type ImportConfig struct {
	// DataDir contains movies_metadata.csv, keywords.csv and credits.csv.
	DataDir string `koanf:"data_dir"`

	// MinVoteCount drops movies with fewer votes than this.
	MinVoteCount int `koanf:"min_vote_count"`

	// BatchSize is the number of movies written per insert batch.
	BatchSize int `koanf:"batch_size"`

	// ProgressPath is the badger directory used to persist import progress.
	// Empty keeps progress in memory only.
	ProgressPath string `koanf:"progress_path"`

	// AutoStart runs an import when the server starts. Requires server.debug.
	AutoStart bool `koanf:"auto_start"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// CacheConfig holds response cache settings.
type CacheConfig struct {
	SearchTTL time.Duration `koanf:"search_ttl"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and
// environment variables, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
