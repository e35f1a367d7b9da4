// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

/*
Package models defines data structures shared across MovieSoup.

Key Components:

  - Movie: the stored movie record, including its precomputed soup
  - RecommendedMovie: a Movie plus its similarity score
  - APIResponse: standardized API response wrapper
  - APIError: structured error details
  - Metadata: response metadata (timestamp, query time)

Field Conventions:

Keywords, Genres, ProductionCompanies, Cast and Directors each hold up to
three names joined with commas, exactly as produced by the importer. Soup is
derived from Keywords, Cast, Directors and Genres and is never empty for a
stored movie that was produced by the importer.

JSON uses snake_case field names to match the public API.
*/
package models
