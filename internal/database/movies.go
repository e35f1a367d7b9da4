// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/moviesoup/internal/metrics"
	"github.com/tomtom215/moviesoup/internal/models"
)

const movieColumns = `id, title, overview, poster, runtime, vote_average, release_date,
	keywords, genres, production_companies, "cast", directors, soup`

// DefaultBatchSize is the number of rows per INSERT when none is given.
const DefaultBatchSize = 500

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMovie(s rowScanner) (models.Movie, error) {
	var m models.Movie
	var released sql.NullTime
	err := s.Scan(&m.ID, &m.Title, &m.Overview, &m.Poster, &m.Runtime, &m.VoteAverage, &released,
		&m.Keywords, &m.Genres, &m.ProductionCompanies, &m.Cast, &m.Directors, &m.Soup)
	if err != nil {
		return m, err
	}
	if released.Valid {
		m.ReleaseDate = released.Time.UTC()
	}
	return m, nil
}

func (db *DB) queryMovies(ctx context.Context, operation, query string, args ...interface{}) ([]models.Movie, error) {
	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		metrics.RecordDBQuery(operation, "movies", time.Since(start), err)
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer closeWithLog(rows, "rows")

	movies := make([]models.Movie, 0)
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			metrics.RecordDBQuery(operation, "movies", time.Since(start), err)
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	err = rows.Err()
	metrics.RecordDBQuery(operation, "movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("error iterating movies: %w", err)
	}
	return movies, nil
}

// placeholders returns "?, ?, ?" for n parameters and the ids as arguments.
func placeholders(ids []int64) (string, []interface{}) {
	marks := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		marks[i] = "?"
		args[i] = id
	}
	return strings.Join(marks, ", "), args
}

// FindByIDs returns the stored movies among ids in id order. Ids that are
// not stored are omitted.
func (db *DB) FindByIDs(ctx context.Context, ids []int64) ([]models.Movie, error) {
	if len(ids) == 0 {
		return []models.Movie{}, nil
	}
	marks, args := placeholders(ids)
	query := fmt.Sprintf(`SELECT %s FROM movies WHERE id IN (%s) ORDER BY id`, movieColumns, marks)
	return db.queryMovies(ctx, "find_by_ids", query, args...)
}

// FindByDateRange returns movies released in [start, end], both days
// inclusive, excluding the listed ids, in id order.
func (db *DB) FindByDateRange(ctx context.Context, start, end time.Time, exclude []int64) ([]models.Movie, error) {
	args := []interface{}{start.Format(time.DateOnly), end.Format(time.DateOnly)}
	query := fmt.Sprintf(`SELECT %s FROM movies
		WHERE release_date BETWEEN CAST(? AS DATE) AND CAST(? AS DATE)`, movieColumns)
	if len(exclude) > 0 {
		marks, ex := placeholders(exclude)
		query += fmt.Sprintf(` AND id NOT IN (%s)`, marks)
		args = append(args, ex...)
	}
	query += ` ORDER BY id`
	return db.queryMovies(ctx, "find_by_date_range", query, args...)
}

// GetMovie returns one movie or a *NotFoundError.
func (db *DB) GetMovie(ctx context.Context, id int64) (*models.Movie, error) {
	start := time.Now()
	row := db.conn.QueryRowContext(ctx, fmt.Sprintf(`SELECT %s FROM movies WHERE id = ?`, movieColumns), id)
	m, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		metrics.RecordDBQuery("get_movie", "movies", time.Since(start), nil)
		return nil, &NotFoundError{IDs: []int64{id}}
	}
	metrics.RecordDBQuery("get_movie", "movies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	return &m, nil
}

// SearchByTitle returns up to count movies whose title contains q, ignoring
// case, skipping the first from matches. Results are ordered by id.
func (db *DB) SearchByTitle(ctx context.Context, q string, from, count int) ([]models.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movies
		WHERE contains(lower(title), lower(?))
		ORDER BY id
		LIMIT ? OFFSET ?`, movieColumns)
	return db.queryMovies(ctx, "search_title", query, q, count, from)
}

// CountMovies returns the number of stored movies.
func (db *DB) CountMovies(ctx context.Context) (int64, error) {
	var n int64
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return n, nil
}

// ProgressFunc is called after each written batch with the rows written so
// far and the total.
type ProgressFunc func(written, total int)

// ReplaceMovies deletes every stored movie and inserts movies in batches of
// batchSize, all in one transaction. Movies with an empty soup are rejected.
func (db *DB) ReplaceMovies(ctx context.Context, movies []models.Movie, batchSize int, progress ProgressFunc) error {
	return db.writeMovies(ctx, movies, batchSize, true, progress)
}

// InsertMovies inserts movies in batches without touching existing rows.
func (db *DB) InsertMovies(ctx context.Context, movies []models.Movie, batchSize int, progress ProgressFunc) error {
	return db.writeMovies(ctx, movies, batchSize, false, progress)
}

func (db *DB) writeMovies(ctx context.Context, movies []models.Movie, batchSize int, replace bool, progress ProgressFunc) error {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	for i := range movies {
		if movies[i].Soup == "" {
			return fmt.Errorf("movie %d has an empty soup", movies[i].ID)
		}
	}

	start := time.Now()
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if replace {
		if _, err = tx.ExecContext(ctx, `DELETE FROM movies`); err != nil {
			return fmt.Errorf("failed to delete movies: %w", err)
		}
	}

	for lo := 0; lo < len(movies); lo += batchSize {
		hi := lo + batchSize
		if hi > len(movies) {
			hi = len(movies)
		}
		if err = insertBatch(ctx, tx, movies[lo:hi]); err != nil {
			return err
		}
		if progress != nil {
			progress(hi, len(movies))
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit movies: %w", err)
	}
	metrics.RecordDBQuery("write_movies", "movies", time.Since(start), nil)
	return nil
}

func insertBatch(ctx context.Context, tx *sql.Tx, batch []models.Movie) error {
	const cols = 13
	values := make([]string, len(batch))
	args := make([]interface{}, 0, len(batch)*cols)
	for i := range batch {
		m := &batch[i]
		values[i] = "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
		var released interface{}
		if !m.ReleaseDate.IsZero() {
			released = m.ReleaseDate.Format(time.DateOnly)
		}
		args = append(args, m.ID, m.Title, m.Overview, m.Poster, m.Runtime, m.VoteAverage, released,
			m.Keywords, m.Genres, m.ProductionCompanies, m.Cast, m.Directors, m.Soup)
	}

	query := fmt.Sprintf(`INSERT INTO movies (%s) VALUES %s`, movieColumns, strings.Join(values, ", "))
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert %d movies: %w", len(batch), err)
	}
	return nil
}
