// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

// Package database stores movies in DuckDB.
//
// A single movies table holds the display fields, the comma-joined feature
// fields and the precomputed soup of each movie. The soup column is NOT NULL
// so every stored movie can take part in a recommendation.
//
// Reads used by the recommender (FindByIDs, FindByDateRange) can be wrapped
// in a BreakerStore, which fails fast with ErrUnavailable while DuckDB is
// failing. Writes happen only during imports and replace the whole table in
// one transaction.
//
// Missing movies are reported as *NotFoundError.
package database
