// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package recommend

import "fmt"

// Default limits.
const (
	DefaultCandidateBudget = 15
	DefaultMaxResults      = 10
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// CandidateBudget is divided evenly across favourites. Each favourite
	// contributes at most CandidateBudget/len(favourites) neighbours.
	CandidateBudget int `json:"candidate_budget"`

	// MaxResults caps the merged result list.
	MaxResults int `json:"max_results"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() *Config {
	return &Config{
		CandidateBudget: DefaultCandidateBudget,
		MaxResults:      DefaultMaxResults,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.CandidateBudget < 1 {
		return fmt.Errorf("candidate_budget must be at least 1, got %d", c.CandidateBudget)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be at least 1, got %d", c.MaxResults)
	}
	return nil
}

// Quota returns the number of neighbours drawn per favourite.
func (c *Config) Quota(favourites int) int {
	if favourites <= 0 {
		return 0
	}
	return c.CandidateBudget / favourites
}
