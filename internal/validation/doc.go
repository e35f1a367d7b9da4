// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

// Package validation provides struct validation using go-playground/validator v10.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Field names taken from json tags, so messages match request bodies
//   - Error translation to human-readable messages
//   - APIError conversion matching the VALIDATION_ERROR response format
//
// # Usage
//
//	type RecommendRequest struct {
//	    Favourites []int64 `json:"favourites" validate:"required,min=1,dive,gt=0"`
//	    Years      []int   `json:"years" validate:"required,len=2,dive,releaseyear"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
//	    return
//	}
package validation
