// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

/*
Command server runs the MovieSoup HTTP API.

MovieSoup recommends movies whose "soup" (keywords, cast, directors and
genres joined into one lower-cased string) is closest by cosine similarity
to the soups of a user's favourites.

# Application Architecture

	RootSupervisor ("moviesoup")
	├── DataSupervisor ("data-layer")
	│   ├── ImportService
	│   └── CatalogStatsService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Initialization order:

 1. .env file (godotenv, optional)
 2. Configuration: koanf v2 with defaults, config file and environment
 3. Logging: zerolog with JSON/console output
 4. Database: DuckDB movie store
 5. Recommendation engine over a circuit-breaker guarded store
 6. Importer with in-memory or BadgerDB progress
 7. Chi router and supervisor tree

# Configuration

	HTTP_PORT=8000                 # server.port
	DEBUG=false                    # server.debug, enables import endpoints
	DUCKDB_PATH=./data/moviesoup.duckdb
	RECOMMEND_TIMEOUT=10s
	IMPORT_DATA_DIR=seed           # movies_metadata.csv, keywords.csv, credits.csv
	IMPORT_MIN_VOTE_COUNT=100
	IMPORT_PROGRESS_PATH=          # BadgerDB directory, empty for in-memory
	IMPORT_AUTO_START=false        # requires DEBUG=true
	RATE_LIMIT_REQUESTS=100
	CORS_ORIGINS=http://localhost:3000
	SEARCH_CACHE_TTL=5m
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree: the HTTP server drains for
up to 10s, a running import is canceled and rolled back, then the database
is closed.

# API Documentation

Swagger UI is served at /swagger/index.html. Offline tasks (import, legacy
migration, ad-hoc recommendations) are in cmd/moviesoup.
*/
package main
