// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/moviesoup/internal/metrics"
)

type fakeCounter struct {
	n     int64
	err   error
	calls atomic.Int32
}

func (f *fakeCounter) CountMovies(context.Context) (int64, error) {
	f.calls.Add(1)
	return f.n, f.err
}

// The movies_stored gauge is global, so these tests do not run in parallel.
func TestCatalogStatsService(t *testing.T) {
	counter := &fakeCounter{n: 4321}
	svc := NewCatalogStatsService(counter, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := svc.Serve(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Serve() = %v, want context.DeadlineExceeded", err)
	}
	if got := testutil.ToFloat64(metrics.MoviesStored); got != 4321 {
		t.Errorf("movies_stored = %v, want 4321", got)
	}
	if counter.calls.Load() < 2 {
		t.Errorf("sampled %d times, want at least 2", counter.calls.Load())
	}
}

func TestCatalogStatsService_ErrorKeepsLastValue(t *testing.T) {
	metrics.SetMoviesStored(7)
	counter := &fakeCounter{err: errors.New("database closed")}
	svc := NewCatalogStatsService(counter, 0)

	if svc.interval != DefaultCatalogStatsInterval {
		t.Errorf("interval = %v, want %v", svc.interval, DefaultCatalogStatsInterval)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_ = svc.Serve(ctx)

	if got := testutil.ToFloat64(metrics.MoviesStored); got != 7 {
		t.Errorf("movies_stored = %v, want 7", got)
	}
}
