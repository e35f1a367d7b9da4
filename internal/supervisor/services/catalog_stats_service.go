// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package services

import (
	"context"
	"time"

	"github.com/tomtom215/moviesoup/internal/logging"
	"github.com/tomtom215/moviesoup/internal/metrics"
)

// DefaultCatalogStatsInterval is the sampling period of the movie count.
const DefaultCatalogStatsInterval = time.Minute

// MovieCounter counts stored movies.
type MovieCounter interface {
	CountMovies(ctx context.Context) (int64, error)
}

// CatalogStatsService samples the number of stored movies into the
// movies_stored gauge, once at start and then every interval.
type CatalogStatsService struct {
	counter  MovieCounter
	interval time.Duration
	name     string
}

// NewCatalogStatsService creates the sampler. A non-positive interval
// defaults to DefaultCatalogStatsInterval.
func NewCatalogStatsService(counter MovieCounter, interval time.Duration) *CatalogStatsService {
	if interval <= 0 {
		interval = DefaultCatalogStatsInterval
	}
	return &CatalogStatsService{
		counter:  counter,
		interval: interval,
		name:     "catalog-stats",
	}
}

// Serve implements suture.Service.
func (s *CatalogStatsService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sample(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sample(ctx)
		}
	}
}

func (s *CatalogStatsService) sample(ctx context.Context) {
	n, err := s.counter.CountMovies(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logging.Warn().Err(err).Msg("Failed to count stored movies")
		}
		return
	}
	metrics.SetMoviesStored(n)
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *CatalogStatsService) String() string {
	return s.name
}
