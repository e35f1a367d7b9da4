// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package recommend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviesoup/internal/models"
)

func newTestEngine(t *testing.T, store MovieStore) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultConfig(), store, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func recIDs(recs []Recommendation) []int64 {
	out := make([]int64, len(recs))
	for i := range recs {
		out[i] = recs[i].Movie.ID
	}
	return out
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(nil, &mockStore{}, zerolog.Nop()); err != nil {
		t.Errorf("NewEngine(nil config) error = %v", err)
	}
	if _, err := NewEngine(&Config{CandidateBudget: 0, MaxResults: 10}, &mockStore{}, zerolog.Nop()); err == nil {
		t.Error("NewEngine(invalid config) succeeded, want error")
	}
	if _, err := NewEngine(nil, nil, zerolog.Nop()); err == nil {
		t.Error("NewEngine(nil store) succeeded, want error")
	}
}

// Scenario A: a movie with the same soup as the favourite ranks first.
func TestRecommend_IdenticalSoupRanksFirst(t *testing.T) {
	t.Parallel()

	store := &mockStore{movies: []models.Movie{
		movie(1, 1995, "action tomhanks chrisnolan scifi"),
		movie(2, 2000, "action tomhanks chrisnolan scifi"),
		movie(3, 2000, "action drama"),
		movie(4, 2000, "romance"),
	}}

	recs, err := newTestEngine(t, store).Recommend(context.Background(), []int64{1}, YearRange{2000, 2000})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) == 0 || recs[0].Movie.ID != 2 {
		t.Fatalf("first recommendation = %v, want movie 2", recIDs(recs))
	}
	if recs[0].Score != 1.0 {
		t.Errorf("score = %v, want 1", recs[0].Score)
	}
	if want := []int64{2, 3, 4}; !reflect.DeepEqual(recIDs(recs), want) {
		t.Errorf("ids = %v, want %v", recIDs(recs), want)
	}
}

// Scenario B: favourites with disjoint vocabularies get their own neighbours.
func TestRecommend_DisjointFavourites(t *testing.T) {
	t.Parallel()

	store := &mockStore{movies: []models.Movie{
		movie(1, 2000, "alpha beta gamma"),
		movie(2, 2000, "delta epsilon zeta"),
		movie(10, 2000, "alpha beta"),
		movie(11, 2000, "alpha"),
		movie(20, 2000, "delta epsilon"),
		movie(21, 2000, "delta"),
	}}

	recs, err := newTestEngine(t, store).Recommend(context.Background(), []int64{1, 2}, YearRange{2000, 2000})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	// Quota is 7 per favourite, so favourite 1 also takes 20 and 21 at
	// score 0 as filler. Those first-seen zeros shadow the 0.816 and 0.577
	// that favourite 2 gives them.
	got := recIDs(recs)
	want := []int64{10, 11, 20, 21}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	wantScores := map[int64]float64{
		10: 2 / math.Sqrt(6),
		11: 1 / math.Sqrt(3),
		20: 0,
		21: 0,
	}
	for _, r := range recs {
		if diff := math.Abs(r.Score - wantScores[r.Movie.ID]); diff > 1e-12 {
			t.Errorf("score[%d] = %v, want %v", r.Movie.ID, r.Score, wantScores[r.Movie.ID])
		}
	}
	for _, r := range recs {
		if r.Movie.ID == 1 || r.Movie.ID == 2 {
			t.Errorf("favourite %d recommended", r.Movie.ID)
		}
	}
}

// Scenario C: no store call for an empty favourite list.
func TestRecommend_EmptyFavourites(t *testing.T) {
	t.Parallel()

	store := &mockStore{}
	_, err := newTestEngine(t, store).Recommend(context.Background(), nil, YearRange{2000, 2001})

	if !IsValidation(err) || !errors.Is(err, ErrEmptyFavourites) {
		t.Fatalf("error = %v, want ValidationError(ErrEmptyFavourites)", err)
	}
	if store.calls.Load() != 0 {
		t.Errorf("store called %d times, want 0", store.calls.Load())
	}
}

// Scenario D: an unknown favourite fails the whole request.
func TestRecommend_FavouriteNotFound(t *testing.T) {
	t.Parallel()

	store := &mockStore{movies: []models.Movie{movie(1, 2000, "a b")}}
	recs, err := newTestEngine(t, store).Recommend(context.Background(), []int64{1, 999}, YearRange{2000, 2001})

	if !IsNotFound(err) || !errors.Is(err, ErrFavouriteNotFound) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
	if recs != nil {
		t.Errorf("recs = %v, want nil", recs)
	}
}

// Scenario E: more favourites than the budget yields an empty result.
func TestRecommend_ZeroQuota(t *testing.T) {
	t.Parallel()

	var movies []models.Movie
	var favourites []int64
	for i := int64(1); i <= 30; i++ {
		movies = append(movies, movie(i, 2000, fmt.Sprintf("genre%d shared", i%3)))
		if i <= 20 {
			favourites = append(favourites, i)
		}
	}

	var buf bytes.Buffer
	engine, err := NewEngine(DefaultConfig(), &mockStore{movies: movies}, zerolog.New(&buf))
	if err != nil {
		t.Fatal(err)
	}

	recs, err := engine.Recommend(context.Background(), favourites, YearRange{2000, 2000})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if recs == nil || len(recs) != 0 {
		t.Errorf("recs = %v, want empty non-nil slice", recs)
	}
	if !strings.Contains(buf.String(), "too many favourites") {
		t.Errorf("zero quota not logged: %s", buf.String())
	}
}

func TestRecommend_Invariants(t *testing.T) {
	t.Parallel()

	genres := []string{"action", "drama", "comedy", "horror", "scifi"}
	var movies []models.Movie
	for i := int64(1); i <= 60; i++ {
		soup := fmt.Sprintf("%s %s actor%d director%d", genres[i%5], genres[(i/5)%5], i%7, i%4)
		movies = append(movies, movie(i, 1990+int(i%20), soup))
	}
	store := &mockStore{movies: movies}
	engine := newTestEngine(t, store)

	for k := 1; k <= 16; k++ {
		favourites := make([]int64, k)
		for i := range favourites {
			favourites[i] = int64(i*3 + 1)
		}

		t.Run(fmt.Sprintf("favourites=%d", k), func(t *testing.T) {
			recs, err := engine.Recommend(context.Background(), favourites, YearRange{1995, 2004})
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}

			if len(recs) > DefaultMaxResults {
				t.Errorf("len = %d, want <= %d", len(recs), DefaultMaxResults)
			}
			if quota := DefaultCandidateBudget / k; len(recs) > quota*k {
				t.Errorf("len = %d exceeds quota %d x %d favourites", len(recs), quota, k)
			}

			isFav := make(map[int64]bool)
			for _, id := range favourites {
				isFav[id] = true
			}
			seen := make(map[int64]bool)
			for i, r := range recs {
				if isFav[r.Movie.ID] {
					t.Errorf("favourite %d in result", r.Movie.ID)
				}
				if seen[r.Movie.ID] {
					t.Errorf("movie %d appears twice", r.Movie.ID)
				}
				seen[r.Movie.ID] = true
				if i > 0 && r.Score > recs[i-1].Score {
					t.Errorf("score at %d (%v) > previous (%v)", i, r.Score, recs[i-1].Score)
				}
			}

			again, err := engine.Recommend(context.Background(), favourites, YearRange{1995, 2004})
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(recs, again) {
				t.Error("second call returned a different result")
			}
		})
	}
}

func TestRecommend_FirstSeenScoreKept(t *testing.T) {
	t.Parallel()

	// Movie 10 is a weak neighbour of favourite 1 and an exact match for
	// favourite 2. The first favourite sees it first, so its weaker score
	// is the one reported.
	store := &mockStore{movies: []models.Movie{
		movie(1, 2000, "alpha beta gamma delta"),
		movie(2, 2000, "omega"),
		movie(10, 2000, "alpha omega"),
	}}

	recs, err := newTestEngine(t, store).Recommend(context.Background(), []int64{1, 2}, YearRange{2000, 2000})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 1 || recs[0].Movie.ID != 10 {
		t.Fatalf("ids = %v, want [10]", recIDs(recs))
	}
	if recs[0].Score >= 1.0 {
		t.Errorf("score = %v, want the first-seen score below 1", recs[0].Score)
	}
}

func TestRecommend_Canceled(t *testing.T) {
	t.Parallel()

	store := &mockStore{movies: []models.Movie{movie(1, 2000, "a b"), movie(2, 2000, "a c")}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestEngine(t, store).Recommend(ctx, []int64{1}, YearRange{2000, 2000})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestNeighbours(t *testing.T) {
	t.Parallel()

	scores := []float64{0.5, 1.0, 0.5, 0.9, 0}
	got := neighbours(scores, 1, 3)
	want := []candidate{{3, 0.9}, {0, 0.5}, {2, 0.5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("neighbours() = %v, want %v", got, want)
	}

	if got := neighbours(scores, 1, 0); len(got) != 0 {
		t.Errorf("neighbours(limit 0) = %v, want empty", got)
	}
	if got := neighbours(scores, 1, 10); len(got) != 4 {
		t.Errorf("neighbours(limit 10) has %d entries, want 4", len(got))
	}
}

func TestConfigQuota(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	tests := map[int]int{0: 0, 1: 15, 2: 7, 4: 3, 15: 1, 16: 0, 20: 0}
	for k, want := range tests {
		if got := cfg.Quota(k); got != want {
			t.Errorf("Quota(%d) = %d, want %d", k, got, want)
		}
	}
}
