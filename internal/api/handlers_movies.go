// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/moviesoup/internal/cache"
	"github.com/tomtom215/moviesoup/internal/logging"
	"github.com/tomtom215/moviesoup/internal/models"
	"github.com/tomtom215/moviesoup/internal/recommend"
	"github.com/tomtom215/moviesoup/internal/validation"
)

// Recommend handles POST /api/v1/movies/recommend
//
// @Summary Recommend movies similar to a set of favourites
// @Description Builds the corpus of movies released inside the year window plus the favourites, compares their soups by cosine similarity and returns at most 10 movies, none of them a favourite, best first.
// @Tags Movies
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Favourite ids and year window"
// @Success 200 {object} models.APIResponse{data=[]models.RecommendedMovie} "Recommendations, best first"
// @Failure 400 {object} models.APIResponse "VALIDATION_ERROR, or INVALID_YEAR_RANGE for a reversed, malformed or out-of-range year window"
// @Failure 404 {object} models.APIResponse "FAVOURITE_NOT_FOUND"
// @Failure 503 {object} models.APIResponse "Movie store unavailable"
// @Failure 504 {object} models.APIResponse "Request timed out"
// @Router /movies/recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		code := ErrCodeValidation
		if isYearsTypeError(err) {
			code = ErrCodeInvalidYearRange
		}
		respondError(w, r, http.StatusBadRequest, code, "Invalid request body: "+err.Error(), nil)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := validationAPIError(verr)
		if yearsOnly(verr) {
			apiErr.Code = ErrCodeInvalidYearRange
		}
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	ctx := r.Context()
	if timeout := h.config.Recommend.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	years := recommend.YearRange{Start: req.Years[0], End: req.Years[1]}
	recs, err := h.engine.Recommend(ctx, req.Favourites, years)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	out := make([]models.RecommendedMovie, len(recs))
	for i, rec := range recs {
		out[i] = models.RecommendedMovie{Movie: rec.Movie, Score: rec.Score}
	}

	logging.Ctx(r.Context()).Debug().
		Int("favourites", len(req.Favourites)).
		Str("years", years.String()).
		Int("results", len(out)).
		Msg("Recommendations served")

	respondSuccess(w, http.StatusOK, out, start, false)
}

// yearsOnly reports whether every failed field belongs to the year window.
func yearsOnly(verr *validation.RequestValidationError) bool {
	errs := verr.Errors()
	if len(errs) == 0 {
		return false
	}
	for _, e := range errs {
		if e.Field() != "years" && !strings.HasPrefix(e.Field(), "years[") {
			return false
		}
	}
	return true
}

// isYearsTypeError reports whether err is a JSON type mismatch on the
// years field, e.g. a string where integers were expected.
func isYearsTypeError(err error) bool {
	var te *json.UnmarshalTypeError
	return errors.As(err, &te) && strings.EqualFold(te.Field, "years")
}

// SearchMovies handles GET /api/v1/movies/search
//
// @Summary Search movies by title
// @Description Case-insensitive title substring search ordered by id. count defaults to 5 and is capped at 25.
// @Tags Movies
// @Produce json
// @Param q query string true "Title fragment"
// @Param from query int false "Number of matches to skip" default(0)
// @Param count query int false "Page size, at most 25" default(5)
// @Success 200 {object} models.APIResponse{data=models.MovieSearchResult} "Matching movies"
// @Failure 400 {object} models.APIResponse "VALIDATION_ERROR"
// @Router /movies/search [get]
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	from, err := parseIntQuery(r, "from", 0)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	count, err := parseIntQuery(r, "count", DefaultSearchCount)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}

	req := SearchRequest{
		Q:     strings.TrimSpace(r.URL.Query().Get("q")),
		From:  from,
		Count: min(count, MaxSearchCount),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	key := cache.GenerateKey("search", req)
	if cached, ok := h.cache.Get(key); ok {
		if result, ok := cached.(*models.MovieSearchResult); ok {
			respondSuccess(w, http.StatusOK, result, start, true)
			return
		}
	}

	movies, err := h.movies.SearchByTitle(r.Context(), req.Q, req.From, req.Count)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}

	result := &models.MovieSearchResult{
		Query:  req.Q,
		From:   req.From,
		Count:  req.Count,
		Movies: movies,
	}
	h.cache.Set(key, result)

	respondSuccess(w, http.StatusOK, result, start, false)
}

// GetMovie handles GET /api/v1/movies/{id}
//
// @Summary Get a movie
// @Description Returns one stored movie including its feature fields and soup.
// @Tags Movies
// @Produce json
// @Param id path int true "Movie id"
// @Success 200 {object} models.APIResponse{data=models.Movie} "The movie"
// @Failure 400 {object} models.APIResponse "VALIDATION_ERROR"
// @Failure 404 {object} models.APIResponse "NOT_FOUND"
// @Router /movies/{id} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "id must be a positive integer", nil)
		return
	}

	movie, err := h.movies.GetMovie(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, movie, start, false)
}
