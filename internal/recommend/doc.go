// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

// Package recommend implements content-based movie recommendations.
//
// # Pipeline
//
// One call to Engine.Recommend runs four request-local stages:
//
//   - Corpus: movies released inside the year window plus the favourites
//     (SelectCorpus)
//   - Vectorize: whitespace tokens of each movie's soup, English stop words
//     removed, counted against a sorted vocabulary (Vectorize)
//   - Similarity: all-pairs cosine similarity over the count rows
//     (CosineMatrix)
//   - Rank: per-favourite neighbours capped by a quota, merged, filtered
//     and truncated
//
// Nothing is cached between calls. The same favourites, year window and
// store contents always produce the same ordered result.
//
// # Soup
//
// A soup is built once at import time from up to three keywords, cast
// members, directors and genres (see ComposeSoup). Multi-word names collapse
// into a single token, so "Tom Hanks" becomes "tomhanks".
//
// # Errors
//
// Input problems are returned as *ValidationError wrapping
// ErrEmptyFavourites or ErrInvalidYearRange. Favourites missing from the
// store are returned as *NotFoundError wrapping ErrFavouriteNotFound.
// Empty soups and zero quotas are logged as degenerate input and never fail
// a request.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), store, logger)
//	if err != nil {
//	    return err
//	}
//	recs, err := engine.Recommend(ctx, []int64{603, 13}, recommend.YearRange{Start: 1990, End: 2005})
//
// # Thread Safety
//
// Engine holds only immutable configuration and its store. It is safe for
// concurrent use as long as the store is.
package recommend
