// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package movieimport

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tomtom215/moviesoup/internal/logging"
	"github.com/tomtom215/moviesoup/internal/models"
)

// LegacyTable is the movie table of the legacy SQLite database.
const LegacyTable = "movies_movie"

// legacyDateLayouts are the release_date encodings found in legacy rows.
var legacyDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700 MST",
	"2006-01-02",
}

// SQLiteReader reads movies from a legacy SQLite database.
type SQLiteReader struct {
	db   *sql.DB
	path string
}

// NewSQLiteReader opens the SQLite database at path read-only.
func NewSQLiteReader(path string) (*SQLiteReader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("database file not found: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var name string
	err = db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, LegacyTable).Scan(&name)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("table %s not found in %s: %w", LegacyTable, path, err)
	}

	return &SQLiteReader{db: db, path: path}, nil
}

// Close closes the database connection.
func (r *SQLiteReader) Close() error {
	return r.db.Close()
}

// CountRecords returns the number of rows in the legacy table.
func (r *SQLiteReader) CountRecords(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+LegacyTable).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// ReadMovies reads every legacy row. The stored soup is copied verbatim;
// rows with a null or empty soup are skipped.
func (r *SQLiteReader) ReadMovies(ctx context.Context) (*LoadResult, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, overview, poster, runtime, vote_average,
		release_date, keywords, genres, production_companies, "cast", directors, soup
		FROM `+LegacyTable+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", LegacyTable, err)
	}
	defer rows.Close()

	res := &LoadResult{Stats: ImportStats{Source: SourceSQLite}}
	for rows.Next() {
		var (
			id                                                 int64
			title, overview, poster                            sql.NullString
			runtime                                            sql.NullInt64
			voteAverage                                        sql.NullFloat64
			released                                           sql.NullString
			keywords, genres, companies, cast, directors, soup sql.NullString
		)
		if err := rows.Scan(&id, &title, &overview, &poster, &runtime, &voteAverage,
			&released, &keywords, &genres, &companies, &cast, &directors, &soup); err != nil {
			return nil, fmt.Errorf("scan %s: %w", LegacyTable, err)
		}
		res.Stats.TotalRecords++
		res.Stats.Processed++

		if !soup.Valid || strings.TrimSpace(soup.String) == "" {
			res.Stats.Skipped++
			continue
		}

		m := models.Movie{
			ID:                  id,
			Title:               title.String,
			Overview:            overview.String,
			Poster:              poster.String,
			Runtime:             int(runtime.Int64),
			VoteAverage:         voteAverage.Float64,
			Keywords:            keywords.String,
			Genres:              genres.String,
			ProductionCompanies: companies.String,
			Cast:                cast.String,
			Directors:           directors.String,
			Soup:                soup.String,
		}
		if released.Valid && released.String != "" {
			t, err := parseLegacyDate(released.String)
			if err != nil {
				res.rowError(id, err)
				continue
			}
			m.ReleaseDate = t
		}
		res.Movies = append(res.Movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", LegacyTable, err)
	}

	logging.Info().
		Str("path", r.path).
		Int64("rows", res.Stats.TotalRecords).
		Int("movies", len(res.Movies)).
		Int64("skipped", res.Stats.Skipped).
		Msg("Legacy database read")

	return res, nil
}

func parseLegacyDate(s string) (time.Time, error) {
	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("release_date %q: unrecognized format", s)
}
