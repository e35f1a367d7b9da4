// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

// @title MovieSoup API
// @version 1.0
// @description Content-based movie recommendations from keyword, cast, director and genre soups.
// @description
// @description ## Rate Limiting
// @description
// @description Movie endpoints allow 100 requests per minute per IP address by default; import control allows 5.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "FAVOURITE_NOT_FOUND",
// @description     "message": "favourite movie not found",
// @description     "details": {"ids": [999]}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-03-01T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/moviesoup/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Movies
// @tag.description Recommendation, title search and movie lookup
//
// @tag.name Import
// @tag.description Bulk TMDB import control, available in debug mode
//
// @tag.name Health
// @tag.description Liveness, readiness and status probes
package main
