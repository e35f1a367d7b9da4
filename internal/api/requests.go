// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package api

// Search paging defaults.
const (
	DefaultSearchCount = 5
	MaxSearchCount     = 25
)

// RecommendRequest is the body of POST /api/v1/movies/recommend.
//
// Favourites keeps caller order; duplicates are allowed. Years is the
// inclusive [start, end] release-year window. A start after the end passes
// validation here and is reported as INVALID_YEAR_RANGE by the engine.
type RecommendRequest struct {
	Favourites []int64 `json:"favourites" validate:"required,min=1,dive,gt=0"`
	Years      []int   `json:"years" validate:"required,len=2,dive,releaseyear"`
}

// SearchRequest holds the validated query parameters of
// GET /api/v1/movies/search. Count is already capped at MaxSearchCount.
type SearchRequest struct {
	Q     string `json:"q" validate:"required,min=1,max=200"`
	From  int    `json:"from" validate:"min=0"`
	Count int    `json:"count" validate:"min=1"`
}
