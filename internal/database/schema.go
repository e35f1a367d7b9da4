// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package database

import (
	"context"
	"fmt"
)

// schemaStatements create the movie table and its indexes. soup is NOT NULL:
// every stored movie must be usable by the recommender.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id BIGINT PRIMARY KEY,
		title TEXT NOT NULL,
		overview TEXT NOT NULL DEFAULT '',
		poster TEXT NOT NULL DEFAULT '',
		runtime INTEGER NOT NULL DEFAULT 0,
		vote_average DOUBLE NOT NULL DEFAULT 0,
		release_date DATE,
		keywords TEXT NOT NULL DEFAULT '',
		genres TEXT NOT NULL DEFAULT '',
		production_companies TEXT NOT NULL DEFAULT '',
		"cast" TEXT NOT NULL DEFAULT '',
		directors TEXT NOT NULL DEFAULT '',
		soup TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movies_release_date ON movies(release_date)`,
}

// createTables creates the schema if it does not exist.
func (db *DB) createTables(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}
