// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviesoup/internal/metrics"
	"github.com/tomtom215/moviesoup/internal/models"
)

// Recommendation is a recommended movie and the similarity that selected it.
type Recommendation struct {
	Movie models.Movie `json:"movie"`
	Score float64      `json:"score"`
}

// candidate is a corpus row and its similarity to one favourite.
type candidate struct {
	row   int
	score float64
}

// Engine produces content-based recommendations. It keeps no state between
// calls and is safe for concurrent use when its store is.
type Engine struct {
	config *Config
	store  MovieStore
	logger zerolog.Logger
}

// NewEngine creates a recommendation engine reading from store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, store MovieStore, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if store == nil {
		return nil, errors.New("movie store is required")
	}

	return &Engine{
		config: cfg,
		store:  store,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// Recommend returns up to MaxResults movies similar to favourites, drawn
// from movies released inside years. Favourites never appear in the result
// and scores are non-increasing.
func (e *Engine) Recommend(ctx context.Context, favourites []int64, years YearRange) ([]Recommendation, error) {
	recs, err := e.recommend(ctx, favourites, years)
	metrics.RecordRecommendation(outcome(err))
	return recs, err
}

func (e *Engine) recommend(ctx context.Context, favourites []int64, years YearRange) ([]Recommendation, error) {
	logger := e.logger.With().
		Int("favourites", len(favourites)).
		Stringer("years", years).
		Logger()

	stage := time.Now()
	corpus, err := SelectCorpus(ctx, e.store, favourites, years)
	if err != nil {
		return nil, err
	}
	metrics.ObserveRecommendStage("corpus", time.Since(stage))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stage = time.Now()
	soups := make([]string, len(corpus))
	for i := range corpus {
		soups[i] = corpus[i].Soup
	}
	vocab, counts := Vectorize(soups)
	metrics.ObserveRecommendStage("vectorize", time.Since(stage))
	metrics.RecordCorpus(len(corpus), vocab.Len())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, row := range counts.Rows {
		if row.Empty() {
			metrics.RecordDegenerateInput("empty_soup")
			logger.Warn().
				Int64("movie_id", corpus[i].ID).
				Msg("movie has no terms after stop word removal, similarity is 0")
		}
	}

	stage = time.Now()
	sim := CosineMatrix(counts)
	metrics.ObserveRecommendStage("similarity", time.Since(stage))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stage = time.Now()
	recs, err := e.rank(corpus, sim, favourites, logger)
	if err != nil {
		return nil, err
	}
	metrics.ObserveRecommendStage("rank", time.Since(stage))

	logger.Debug().
		Int("corpus", len(corpus)).
		Int("vocabulary", vocab.Len()).
		Int("returned", len(recs)).
		Msg("recommendation complete")

	return recs, nil
}

// rank draws each favourite's nearest neighbours, merges them keeping the
// first score seen for a movie, removes favourites and truncates.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) rank(corpus []models.Movie, sim SimilarityMatrix, favourites []int64, logger zerolog.Logger) ([]Recommendation, error) {
	rowOf := make(map[int64]int, len(corpus))
	for i := range corpus {
		rowOf[corpus[i].ID] = i
	}
	isFavourite := make(map[int64]bool, len(favourites))
	for _, id := range favourites {
		isFavourite[id] = true
	}

	quota := e.config.Quota(len(favourites))
	if quota == 0 {
		metrics.RecordDegenerateInput("zero_quota")
		logger.Warn().
			Int("candidate_budget", e.config.CandidateBudget).
			Msg("too many favourites for the candidate budget, no neighbours drawn")
		return []Recommendation{}, nil
	}

	var merged []candidate
	seen := make(map[int]bool)
	for _, id := range favourites {
		row, ok := rowOf[id]
		if !ok {
			return nil, fmt.Errorf("favourite %d missing from corpus", id)
		}

		for _, c := range neighbours(sim.Row(row), row, quota) {
			if seen[c.row] {
				continue
			}
			seen[c.row] = true
			merged = append(merged, c)
		}
	}

	kept := merged[:0]
	for _, c := range merged {
		if !isFavourite[corpus[c.row].ID] {
			kept = append(kept, c)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].score > kept[j].score })
	if len(kept) > e.config.MaxResults {
		kept = kept[:e.config.MaxResults]
	}

	recs := make([]Recommendation, len(kept))
	for i, c := range kept {
		recs[i] = Recommendation{Movie: corpus[c.row], Score: c.score}
	}
	return recs, nil
}

// neighbours orders the rows of scores by descending score, ties kept in
// row order, skips self and returns the next limit rows.
func neighbours(scores []float64, self, limit int) []candidate {
	ranked := make([]candidate, len(scores))
	for i, s := range scores {
		ranked[i] = candidate{row: i, score: s}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	out := make([]candidate, 0, limit)
	for _, c := range ranked {
		if len(out) == limit {
			break
		}
		if c.row == self {
			continue
		}
		out = append(out, c)
	}
	return out
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case IsValidation(err):
		return "validation_error"
	case IsNotFound(err):
		return "not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
