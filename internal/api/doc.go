// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

/*
Package api provides the HTTP JSON API.

# Endpoints

	POST   /api/v1/movies/recommend      recommendations for a favourite set
	GET    /api/v1/movies/search         title search (q, from, count)
	GET    /api/v1/movies/{id}           one movie
	POST   /api/v1/movies/import         start a TMDB CSV import (debug only)
	DELETE /api/v1/movies/import         cancel the running import (debug only)
	GET    /api/v1/movies/import/status  import progress
	GET    /api/v1/health[/live|/ready]  health probes
	GET    /metrics                      Prometheus
	GET    /swagger/*                    API documentation

# Response Format

Every endpoint answers with the models.APIResponse envelope:

	{
	  "status": "success",
	  "data": [...],
	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 12}
	}

Errors carry a machine-readable code:

	VALIDATION_ERROR      400  malformed body or query parameters
	INVALID_YEAR_RANGE    400  year window reversed, malformed or outside 1870-2100
	FAVOURITE_NOT_FOUND   404  a favourite id is not stored (details.ids)
	NOT_FOUND             404  unknown movie or route
	FORBIDDEN             403  import control outside debug mode
	CONFLICT              409  import already running, or none to stop
	TOO_MANY_REQUESTS     429  per-IP rate limit
	SERVICE_UNAVAILABLE   503  movie store circuit open
	TIMEOUT               504  recommend.timeout elapsed

# Caching

Search pages are cached for cache.search_ttl and the cache is cleared after
each import. Recommendations are never cached.
*/
package api
