// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package database

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnavailable is returned when the storage circuit breaker rejects a call.
var ErrUnavailable = errors.New("database temporarily unavailable")

// NotFoundError reports movie ids that are not stored.
type NotFoundError struct {
	IDs []int64
}

func (e *NotFoundError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	if len(ids) == 1 {
		return fmt.Sprintf("movie %s not found", ids[0])
	}
	return fmt.Sprintf("movies not found: %s", strings.Join(ids, ", "))
}

// IsNotFound reports whether err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
