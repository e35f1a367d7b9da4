// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package models

import "time"

// Movie is a stored movie record.
//
// Runtime, VoteAverage, Overview and Poster are display fields. ReleaseDate
// is only used to select the candidate corpus for a recommendation.
type Movie struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Overview            string    `json:"overview"`
	Poster              string    `json:"poster"`
	Runtime             int       `json:"runtime"`
	VoteAverage         float64   `json:"vote_average"`
	ReleaseDate         time.Time `json:"release_date"`
	Keywords            string    `json:"keywords"`
	Genres              string    `json:"genres"`
	ProductionCompanies string    `json:"production_companies"`
	Cast                string    `json:"cast"`
	Directors           string    `json:"directors"`
	Soup                string    `json:"soup"`
}

// Year returns the release year, or 0 when the release date is unset.
func (m *Movie) Year() int {
	if m.ReleaseDate.IsZero() {
		return 0
	}
	return m.ReleaseDate.Year()
}

// RecommendedMovie is a movie returned by the recommender together with
// the cosine similarity that selected it.
type RecommendedMovie struct {
	Movie
	Score float64 `json:"score"`
}

// MovieSearchResult is one page of a title search.
type MovieSearchResult struct {
	Query  string  `json:"query"`
	From   int     `json:"from"`
	Count  int     `json:"count"`
	Movies []Movie `json:"movies"`
}
