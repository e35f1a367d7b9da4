// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/moviesoup/internal/models"
)

// MovieStore is the read side of movie storage used by the recommender.
// It is implemented by the database package.
type MovieStore interface {
	// FindByIDs returns the stored movies among ids. Unknown ids are
	// omitted from the result; order is unspecified.
	FindByIDs(ctx context.Context, ids []int64) ([]models.Movie, error)

	// FindByDateRange returns movies released in [start, end], both days
	// inclusive, excluding the listed ids. Order is unspecified.
	FindByDateRange(ctx context.Context, start, end time.Time, exclude []int64) ([]models.Movie, error)
}

// YearRange is an inclusive window of release years.
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Validate rejects windows whose start is after their end.
func (y YearRange) Validate() error {
	if y.Start > y.End {
		return &ValidationError{Field: "years", Value: y.String(), Err: ErrInvalidYearRange}
	}
	return nil
}

// Bounds returns the first and last day of the window in UTC.
func (y YearRange) Bounds() (start, end time.Time) {
	start = time.Date(y.Start, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(y.End, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

func (y YearRange) String() string {
	return fmt.Sprintf("%d-%d", y.Start, y.End)
}

// ParseYearRange parses "START-END" or a single "YEAR".
func ParseYearRange(s string) (YearRange, error) {
	s = strings.TrimSpace(s)
	startStr, endStr, found := strings.Cut(s, "-")
	if !found {
		endStr = startStr
	}
	start, err := strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil {
		return YearRange{}, &ValidationError{Field: "years", Value: s, Err: ErrInvalidYearRange}
	}
	end, err := strconv.Atoi(strings.TrimSpace(endStr))
	if err != nil {
		return YearRange{}, &ValidationError{Field: "years", Value: s, Err: ErrInvalidYearRange}
	}
	years := YearRange{Start: start, End: end}
	return years, years.Validate()
}

// SelectCorpus assembles the candidate corpus for one request: every movie
// released inside years that is not a favourite, followed by every
// favourite regardless of its release date. Each part is ordered by id so
// the same store contents always give the same corpus.
//
// An empty favourite list is rejected before the store is queried. A
// favourite that does not resolve is returned as *NotFoundError.
func SelectCorpus(ctx context.Context, store MovieStore, favourites []int64, years YearRange) ([]models.Movie, error) {
	if len(favourites) == 0 {
		return nil, &ValidationError{Field: "favourites", Err: ErrEmptyFavourites}
	}
	if err := years.Validate(); err != nil {
		return nil, err
	}

	wanted := uniqueIDs(favourites)
	start, end := years.Bounds()

	inRange, err := store.FindByDateRange(ctx, start, end, wanted)
	if err != nil {
		return nil, fmt.Errorf("find movies in %s: %w", years, err)
	}
	favs, err := store.FindByIDs(ctx, wanted)
	if err != nil {
		return nil, fmt.Errorf("find favourites: %w", err)
	}

	found := make(map[int64]bool, len(favs))
	for i := range favs {
		found[favs[i].ID] = true
	}
	var missing []int64
	for _, id := range wanted {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &NotFoundError{IDs: missing, Err: ErrFavouriteNotFound}
	}

	sortByID(inRange)
	sortByID(favs)

	corpus := make([]models.Movie, 0, len(inRange)+len(favs))
	seen := make(map[int64]bool, cap(corpus))
	for _, part := range [][]models.Movie{inRange, favs} {
		for i := range part {
			if seen[part[i].ID] {
				continue
			}
			seen[part[i].ID] = true
			corpus = append(corpus, part[i])
		}
	}
	return corpus, nil
}

// uniqueIDs returns ids without duplicates, sorted ascending.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortByID(movies []models.Movie) {
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
}
