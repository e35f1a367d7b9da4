// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearConfigEnv unsets every mapped variable for the duration of the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	keys := []string{ConfigPathEnvVar}
	for k := range envMappings {
		keys = append(keys, strings.ToUpper(k))
	}
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Debug {
		t.Errorf("Server.Debug should be false by default")
	}
	if cfg.Database.Path != "./data/moviesoup.duckdb" {
		t.Errorf("Database.Path = %q, want ./data/moviesoup.duckdb", cfg.Database.Path)
	}
	if cfg.Recommend.CandidateBudget != 15 {
		t.Errorf("Recommend.CandidateBudget = %d, want 15", cfg.Recommend.CandidateBudget)
	}
	if cfg.Recommend.MaxResults != 10 {
		t.Errorf("Recommend.MaxResults = %d, want 10", cfg.Recommend.MaxResults)
	}
	if cfg.Import.MinVoteCount != 100 {
		t.Errorf("Import.MinVoteCount = %d, want 100", cfg.Import.MinVoteCount)
	}
	if cfg.Import.BatchSize != 500 {
		t.Errorf("Import.BatchSize = %d, want 500", cfg.Import.BatchSize)
	}
	if cfg.Import.DataDir != "seed" {
		t.Errorf("Import.DataDir = %q, want seed", cfg.Import.DataDir)
	}
	if cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("Security.RateLimitWindow = %v, want 1m", cfg.Security.RateLimitWindow)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"DEBUG", "server.debug"},
		{"DUCKDB_PATH", "database.path"},
		{"RECOMMEND_CANDIDATE_BUDGET", "recommend.candidate_budget"},
		{"IMPORT_DATA_DIR", "import.data_dir"},
		{"IMPORT_PROGRESS_PATH", "import.progress_path"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"SEARCH_CACHE_TTL", "cache.search_ttl"},
		{"LOG_FORMAT", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Run("CONFIG_PATH takes precedence", func(t *testing.T) {
		clearConfigEnv(t)
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, path)

		if got := findConfigFile(); got != path {
			t.Errorf("findConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("missing CONFIG_PATH falls through", func(t *testing.T) {
		clearConfigEnv(t)
		t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "nope.yaml"))

		if got := findConfigFile(); got == os.Getenv(ConfigPathEnvVar) {
			t.Errorf("findConfigFile() returned nonexistent path %q", got)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("IMPORT_BATCH_SIZE", "250")
	t.Setenv("RECOMMEND_TIMEOUT", "3s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Import.BatchSize != 250 {
		t.Errorf("Import.BatchSize = %d, want 250", cfg.Import.BatchSize)
	}
	if cfg.Recommend.Timeout != 3*time.Second {
		t.Errorf("Recommend.Timeout = %v, want 3s", cfg.Recommend.Timeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("Security.CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	clearConfigEnv(t)

	configContent := `
server:
  port: 8888
  host: "127.0.0.1"

import:
  data_dir: "/srv/tmdb"

logging:
  level: "warn"
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env)", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1 (file)", cfg.Server.Host)
	}
	if cfg.Import.DataDir != "/srv/tmdb" {
		t.Errorf("Import.DataDir = %q, want /srv/tmdb (file)", cfg.Import.DataDir)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (file)", cfg.Logging.Level)
	}
	if cfg.Recommend.CandidateBudget != 15 {
		t.Errorf("Recommend.CandidateBudget = %d, want 15 (default)", cfg.Recommend.CandidateBudget)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		errMsg  string
	}{
		{
			name:    "port out of range",
			envVars: map[string]string{"HTTP_PORT": "70000"},
			errMsg:  "HTTP_PORT must be between 1 and 65535",
		},
		{
			name:    "auto start without debug",
			envVars: map[string]string{"IMPORT_AUTO_START": "true"},
			errMsg:  "IMPORT_AUTO_START requires DEBUG=true",
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{"LOG_LEVEL": "verbose"},
			errMsg:  "LOG_LEVEL must be one of",
		},
		{
			name:    "wildcard CORS in production",
			envVars: map[string]string{"ENVIRONMENT": "production", "CORS_ORIGINS": "*"},
			errMsg:  "CORS_ORIGINS=* (wildcard) is not allowed in production",
		},
		{
			name:    "zero candidate budget",
			envVars: map[string]string{"RECOMMEND_CANDIDATE_BUDGET": "0"},
			errMsg:  "RECOMMEND_CANDIDATE_BUDGET must be between",
		},
		{
			name:    "valid debug auto start",
			envVars: map[string]string{"DEBUG": "true", "IMPORT_AUTO_START": "true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if tt.errMsg == "" {
				if err != nil {
					t.Fatalf("LoadWithKoanf() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("LoadWithKoanf() error = nil, want %q", tt.errMsg)
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("LoadWithKoanf() error = %q, want containing %q", err.Error(), tt.errMsg)
			}
		})
	}
}
