// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and are
exposed at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Database:
  - duckdb_query_duration_seconds{operation,table}
  - duckdb_query_errors_total{operation,table,error_type}

Recommendations:
  - recommend_requests_total{outcome}
  - recommend_stage_duration_seconds{stage}
  - recommend_corpus_size
  - recommend_vocabulary_size
  - recommend_degenerate_inputs_total{kind}

Import:
  - import_rows_total{result}
  - import_duration_seconds
  - import_last_success_timestamp

Cache and circuit breaker:
  - cache_hits_total{cache_type}, cache_misses_total{cache_type}, cache_entries{cache_type}
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}
*/
package metrics
