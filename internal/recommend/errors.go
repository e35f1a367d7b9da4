// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package recommend

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for recommendation requests.
var (
	ErrEmptyFavourites   = errors.New("at least one favourite movie is required")
	ErrInvalidYearRange  = errors.New("invalid year range")
	ErrFavouriteNotFound = errors.New("favourite movie not found")
)

// ValidationError reports a request rejected before any computation.
type ValidationError struct {
	Field string
	Value interface{}
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v (got %v)", e.Field, e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NotFoundError reports favourites that do not resolve to stored movies.
type NotFoundError struct {
	IDs []int64
	Err error
}

func (e *NotFoundError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("%v: %s", e.Err, strings.Join(ids, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
