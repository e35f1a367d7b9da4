// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/moviesoup/internal/database"
	"github.com/tomtom215/moviesoup/internal/models"
	"github.com/tomtom215/moviesoup/internal/recommend"
)

// Error codes for API responses
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeInvalidYearRange   = "INVALID_YEAR_RANGE"
	ErrCodeFavouriteNotFound  = "FAVOURITE_NOT_FOUND"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeConflict           = "CONFLICT"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeTimeout            = "TIMEOUT"
	ErrCodeCanceled           = "REQUEST_CANCELED"
	ErrCodeDatabase           = "DATABASE_ERROR"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// statusClientClosedRequest is the nginx convention for a request whose
// client went away.
const statusClientClosedRequest = 499

// errorResponse maps a service error to its status code and APIError.
func errorResponse(err error) (int, *models.APIError) {
	var notFound *recommend.NotFoundError
	var dbNotFound *database.NotFoundError

	switch {
	case errors.Is(err, recommend.ErrInvalidYearRange):
		return http.StatusBadRequest, &models.APIError{Code: ErrCodeInvalidYearRange, Message: err.Error()}
	case recommend.IsValidation(err):
		return http.StatusBadRequest, &models.APIError{Code: ErrCodeValidation, Message: err.Error()}
	case errors.As(err, &notFound):
		return http.StatusNotFound, &models.APIError{
			Code:    ErrCodeFavouriteNotFound,
			Message: recommend.ErrFavouriteNotFound.Error(),
			Details: map[string]interface{}{"ids": notFound.IDs},
		}
	case errors.As(err, &dbNotFound):
		return http.StatusNotFound, &models.APIError{
			Code:    ErrCodeNotFound,
			Message: "movie not found",
			Details: map[string]interface{}{"ids": dbNotFound.IDs},
		}
	case errors.Is(err, database.ErrUnavailable):
		return http.StatusServiceUnavailable, &models.APIError{
			Code:    ErrCodeServiceUnavailable,
			Message: "movie store temporarily unavailable",
		}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, &models.APIError{Code: ErrCodeTimeout, Message: "request timed out"}
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, &models.APIError{Code: ErrCodeCanceled, Message: "request canceled"}
	default:
		return http.StatusInternalServerError, &models.APIError{Code: ErrCodeInternal, Message: "internal server error"}
	}
}

// respondServiceError writes the error envelope for err. Client errors are
// logged at warn level, server errors at error level.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, apiErr := errorResponse(err)
	respondAPIError(w, r, status, apiErr, err)
}
