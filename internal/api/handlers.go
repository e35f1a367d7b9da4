// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package api

import (
	"context"
	"time"

	"github.com/tomtom215/moviesoup/internal/cache"
	"github.com/tomtom215/moviesoup/internal/config"
	movieimport "github.com/tomtom215/moviesoup/internal/import"
	"github.com/tomtom215/moviesoup/internal/logging"
	"github.com/tomtom215/moviesoup/internal/models"
	"github.com/tomtom215/moviesoup/internal/recommend"
)

// Version is reported by the health endpoint. It is set at build time.
var Version = "dev"

// searchCacheName labels the search cache in metrics.
const searchCacheName = "search"

// importTimeout bounds an import started over HTTP.
const importTimeout = 30 * time.Minute

// Recommender produces recommendations for a favourite set.
type Recommender interface {
	Recommend(ctx context.Context, favourites []int64, years recommend.YearRange) ([]recommend.Recommendation, error)
}

// MovieCatalog is the read side of movie storage used by the handlers.
type MovieCatalog interface {
	GetMovie(ctx context.Context, id int64) (*models.Movie, error)
	SearchByTitle(ctx context.Context, q string, from, count int) ([]models.Movie, error)
	CountMovies(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// ImportController starts, stops and reports bulk imports.
type ImportController interface {
	Start(ctx context.Context, timeout time.Duration) error
	GetStats() *movieimport.ImportStats
	IsRunning() bool
	Stop() error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_movies.go: recommend, search and movie lookup
//   - handlers_import.go: bulk import control (debug only)
//   - handlers_health.go: health probes
type Handler struct {
	config    *config.Config
	engine    Recommender
	movies    MovieCatalog
	importer  ImportController
	cache     *cache.Cache
	startTime time.Time
}

// NewHandler creates the API handler. importer may be nil, in which case
// the import endpoints answer 503.
func NewHandler(cfg *config.Config, engine Recommender, movies MovieCatalog, importer ImportController) *Handler {
	return &Handler{
		config:    cfg,
		engine:    engine,
		movies:    movies,
		importer:  importer,
		cache:     cache.New(searchCacheName, cfg.Cache.SearchTTL, 0),
		startTime: time.Now(),
	}
}

// ClearCache drops all cached search results. It runs after every import.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		logging.Info().Msg("Search cache cleared")
	}
}

// Close releases the handler's background resources.
func (h *Handler) Close() {
	if h.cache != nil {
		h.cache.Close()
	}
}
