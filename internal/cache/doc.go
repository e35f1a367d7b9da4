// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

/*
Package cache provides a thread-safe in-memory cache with TTL support.

The API caches title search results here. Recommendations are never cached:
every request builds its own corpus, vocabulary and similarity matrix.

Entries expire lazily on Get and are swept every five minutes. The cache is
bounded; when full, the entry nearest to expiry is evicted. The whole cache
is cleared after each import, since search results are stale once the movie
table has been replaced.

# Usage Example

	c := cache.New("search", 5*time.Minute, 0)
	defer c.Close()

	key := cache.GenerateKey("search", params)
	if data, ok := c.Get(key); ok {
	    return data.(*models.MovieSearchResult), nil
	}

# Metrics

Hits, misses and entry counts are exported as the cache_hits_total,
cache_misses_total and cache_entries series,
labelled with the cache name.
*/
package cache
