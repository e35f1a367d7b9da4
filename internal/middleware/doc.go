// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

/*
Package middleware provides HTTP middleware components for the API.

All middleware has the chi signature func(http.Handler) http.Handler.

Key Components:

  - RequestID: UUID request ids, propagated to the logging context and the
    X-Request-ID response header
  - RequestLogger: one structured access log line per request
  - PrometheusMetrics: request count, duration and in-flight gauge, labelled
    by chi route pattern
  - Compression: gzip for clients sending Accept-Encoding: gzip

Middleware Stack:

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors)
	r.Use(middleware.PrometheusMetrics)

Rate limiting (go-chi/httprate) and CORS (go-chi/cors) are configured in
internal/api.
*/
package middleware
