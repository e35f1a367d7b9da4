// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

// Package movieimport loads movies into the store in bulk.
//
// # TMDB CSV import
//
// Import reads movies_metadata.csv, keywords.csv and credits.csv from the
// configured data directory and:
//
//  1. coerces ids to numbers, dropping rows whose id is not numeric
//  2. inner-joins the three files on id
//  3. drops rows with any missing feature and rows with fewer votes than
//     import.min_vote_count
//  4. parses the keyword, genre, company, cast and crew columns, which hold
//     Python list literals such as [{'id': 28, 'name': 'Action'}]
//  5. keeps the first three names of each list (directors are taken from
//     crew members whose job is "Director") and composes the soup
//  6. replaces every stored movie in one transaction
//
// A row whose list column cannot be parsed is counted as an error and
// skipped; it never gets an empty soup. A missing file or column aborts
// the import.
//
// # Legacy migration
//
// Migrate copies the movies_movie table of a legacy SQLite database,
// keeping each row's stored soup. Rows with a null soup are skipped.
//
// # Progress
//
// The statistics of the last import are kept by a ProgressTracker, either
// in memory or in BadgerDB when import.progress_path is set, so the status
// endpoint reports the last import after a restart.
package movieimport
