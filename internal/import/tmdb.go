// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package movieimport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/moviesoup/internal/logging"
	"github.com/tomtom215/moviesoup/internal/models"
	"github.com/tomtom215/moviesoup/internal/recommend"
)

// TMDB dataset file names inside the data directory.
const (
	MetadataFile = "movies_metadata.csv"
	KeywordsFile = "keywords.csv"
	CreditsFile  = "credits.csv"
)

// errorLogSample logs the first rows that fail and then every Nth.
const errorLogSample = 100

// metadataColumns are the movies_metadata.csv columns that must be present
// and non-empty for a movie to be imported.
var metadataColumns = []string{
	"id", "imdb_id", "title", "overview", "poster_path", "runtime",
	"vote_average", "vote_count", "release_date", "genres", "production_companies",
}

// csvTable is a CSV file read into memory with a header index.
type csvTable struct {
	name    string
	columns map[string]int
	rows    [][]string
}

func (t *csvTable) get(row []string, col string) string {
	return strings.TrimSpace(row[t.columns[col]])
}

func readCSV(path string, required ...string) (*csvTable, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	t := &csvTable{name: filepath.Base(path), columns: make(map[string]int, len(header))}
	for i, col := range header {
		t.columns[strings.TrimPrefix(strings.TrimSpace(col), "\ufeff")] = i
	}
	for _, col := range required {
		if _, ok := t.columns[col]; !ok {
			return nil, fmt.Errorf("%s: missing column %q", t.name, col)
		}
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if len(row) < len(header) {
			continue
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// numericID mirrors pandas' to_numeric(errors="coerce"): ids that are not
// numbers are dropped, "862.0" is accepted.
func numericID(s string) (int64, bool) {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// indexByID keeps the first row for each numeric id.
func indexByID(t *csvTable) map[int64][]string {
	out := make(map[int64][]string, len(t.rows))
	for _, row := range t.rows {
		id, ok := numericID(t.get(row, "id"))
		if !ok {
			continue
		}
		if _, dup := out[id]; !dup {
			out[id] = row
		}
	}
	return out
}

// LoadResult is the outcome of reading a TMDB data directory.
type LoadResult struct {
	Movies []models.Movie
	Stats  ImportStats
}

// LoadTMDB reads the three TMDB CSV files in dir, inner-joins them on id,
// drops rows with missing features or fewer than minVotes votes, and builds
// the feature fields and soup of every remaining movie.
//
// Rows that fail to parse are counted in Stats.Errors and skipped. A
// missing file or column fails the whole load.
func LoadTMDB(ctx context.Context, dir string, minVotes int) (*LoadResult, error) {
	metadata, err := readCSV(filepath.Join(dir, MetadataFile), metadataColumns...)
	if err != nil {
		return nil, err
	}
	keywords, err := readCSV(filepath.Join(dir, KeywordsFile), "id", "keywords")
	if err != nil {
		return nil, err
	}
	credits, err := readCSV(filepath.Join(dir, CreditsFile), "id", "cast", "crew")
	if err != nil {
		return nil, err
	}

	keywordRows := indexByID(keywords)
	creditRows := indexByID(credits)

	res := &LoadResult{Stats: ImportStats{Source: SourceTMDB}}
	seen := make(map[int64]bool)

	for _, row := range metadata.rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id, ok := numericID(metadata.get(row, "id"))
		if !ok {
			continue
		}
		kw, okKw := keywordRows[id]
		cr, okCr := creditRows[id]
		if !okKw || !okCr {
			continue
		}
		res.Stats.TotalRecords++
		res.Stats.Processed++

		if seen[id] {
			res.Stats.Skipped++
			continue
		}

		rec := tmdbRecord{
			id:       id,
			metadata: metadata, metaRow: row,
			keywords: keywords.get(kw, "keywords"),
			cast:     credits.get(cr, "cast"),
			crew:     credits.get(cr, "crew"),
		}
		if !rec.complete() {
			res.Stats.Skipped++
			continue
		}

		votes, err := strconv.ParseFloat(metadata.get(row, "vote_count"), 64)
		if err != nil {
			res.rowError(id, fmt.Errorf("vote_count: %w", err))
			continue
		}
		if votes < float64(minVotes) {
			res.Stats.Skipped++
			continue
		}

		movie, err := rec.toMovie()
		if err != nil {
			res.rowError(id, err)
			continue
		}
		seen[id] = true
		res.Movies = append(res.Movies, movie)
	}

	logging.Info().
		Int64("rows", res.Stats.TotalRecords).
		Int("movies", len(res.Movies)).
		Int64("skipped", res.Stats.Skipped).
		Int64("errors", res.Stats.Errors).
		Msg("TMDB data loaded")

	return res, nil
}

func (r *LoadResult) rowError(id int64, err error) {
	r.Stats.Errors++
	if r.Stats.Errors <= 10 || r.Stats.Errors%errorLogSample == 0 {
		logging.Warn().Int64("movie_id", id).Int64("errors", r.Stats.Errors).Err(err).Msg("Skipping malformed row")
	}
}

// tmdbRecord is one joined row of the three files.
type tmdbRecord struct {
	id       int64
	metadata *csvTable
	metaRow  []string
	keywords string
	cast     string
	crew     string
}

func (r *tmdbRecord) field(col string) string {
	return r.metadata.get(r.metaRow, col)
}

// complete reports whether every feature is present, the equivalent of
// dropping rows with any NaN feature.
func (r *tmdbRecord) complete() bool {
	for _, col := range metadataColumns {
		if r.field(col) == "" {
			return false
		}
	}
	return r.keywords != "" && r.cast != "" && r.crew != ""
}

func (r *tmdbRecord) toMovie() (models.Movie, error) {
	released, err := time.Parse(time.DateOnly, r.field("release_date"))
	if err != nil {
		return models.Movie{}, fmt.Errorf("release_date: %w", err)
	}
	runtime, err := strconv.ParseFloat(r.field("runtime"), 64)
	if err != nil {
		return models.Movie{}, fmt.Errorf("runtime: %w", err)
	}
	voteAverage, err := strconv.ParseFloat(r.field("vote_average"), 64)
	if err != nil {
		return models.Movie{}, fmt.Errorf("vote_average: %w", err)
	}

	lists := make(map[string][]recommend.NamedEntity, 5)
	for _, col := range []struct{ name, raw string }{
		{"keywords", r.keywords},
		{"genres", r.field("genres")},
		{"production_companies", r.field("production_companies")},
		{"cast", r.cast},
		{"crew", r.crew},
	} {
		list, err := ParseNamedList(col.raw)
		if err != nil {
			return models.Movie{}, fmt.Errorf("%s: %w", col.name, err)
		}
		lists[col.name] = list
	}

	m := models.Movie{
		ID:                  r.id,
		Title:               r.field("title"),
		Overview:            r.field("overview"),
		Poster:              r.field("poster_path"),
		Runtime:             int(runtime),
		VoteAverage:         voteAverage,
		ReleaseDate:         released,
		Keywords:            recommend.Stringify(lists["keywords"]),
		Genres:              recommend.Stringify(lists["genres"]),
		ProductionCompanies: recommend.Stringify(lists["production_companies"]),
		Cast:                recommend.Stringify(lists["cast"]),
		Directors:           recommend.Directors(lists["crew"]),
	}
	m.Soup = recommend.ComposeSoup(m.Keywords, m.Cast, m.Directors, m.Genres)
	return m, nil
}
