// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package main

import (
	"fmt"

	"github.com/tomtom215/moviesoup/internal/config"
	"github.com/tomtom215/moviesoup/internal/database"
	"github.com/tomtom215/moviesoup/internal/logging"
	"github.com/tomtom215/moviesoup/internal/recommend"
)

// buildEngineConfig maps the recommend section of the service config.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	ec := recommend.DefaultConfig()
	if cfg.Recommend.CandidateBudget > 0 {
		ec.CandidateBudget = cfg.Recommend.CandidateBudget
	}
	if cfg.Recommend.MaxResults > 0 {
		ec.MaxResults = cfg.Recommend.MaxResults
	}
	return ec
}

// initRecommend builds the engine over a circuit-breaker guarded view of db.
func initRecommend(cfg *config.Config, db *database.DB) (*recommend.Engine, error) {
	ec := buildEngineConfig(cfg)
	logger := logging.WithComponent("recommend")

	store := database.NewBreakerStore(db, database.DefaultBreakerSettings())
	engine, err := recommend.NewEngine(ec, store, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	logger.Info().
		Int("candidate_budget", ec.CandidateBudget).
		Int("max_results", ec.MaxResults).
		Dur("timeout", cfg.Recommend.Timeout).
		Msg("Recommendation engine initialized")
	return engine, nil
}
