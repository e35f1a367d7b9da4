// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

// Package cli implements the moviesoup command line tool: bulk import,
// legacy migration, title search, recommendations and soup inspection
// against the DuckDB store configured for the server.
package cli
