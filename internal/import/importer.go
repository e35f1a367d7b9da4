// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package movieimport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/moviesoup/internal/config"
	"github.com/tomtom215/moviesoup/internal/database"
	"github.com/tomtom215/moviesoup/internal/logging"
	"github.com/tomtom215/moviesoup/internal/metrics"
	"github.com/tomtom215/moviesoup/internal/models"
)

// Sentinel errors returned by the importer.
var (
	ErrImportRunning = errors.New("import already in progress")
	ErrNotRunning    = errors.New("no import in progress")
)

// MovieWriter is the write side of movie storage used by imports.
type MovieWriter interface {
	ReplaceMovies(ctx context.Context, movies []models.Movie, batchSize int, progress database.ProgressFunc) error
}

// Importer runs bulk movie imports, one at a time.
type Importer struct {
	cfg      *config.ImportConfig
	store    MovieWriter
	progress ProgressTracker

	// onComplete runs after every successful import.
	onComplete []func()

	mu      sync.RWMutex
	running bool
	stats   *ImportStats
	cancel  context.CancelFunc
}

// NewImporter creates an importer writing to store. progress may be nil.
func NewImporter(cfg *config.ImportConfig, store MovieWriter, progress ProgressTracker) *Importer {
	return &Importer{
		cfg:      cfg,
		store:    store,
		progress: progress,
	}
}

// OnComplete registers fn to run after each successful import, e.g. to
// clear response caches.
func (i *Importer) OnComplete(fn func()) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.onComplete = append(i.onComplete, fn)
}

// Import wipes the store and imports the TMDB CSV files in cfg.DataDir.
func (i *Importer) Import(ctx context.Context) (*ImportStats, error) {
	return i.run(ctx, SourceTMDB, i.loadTMDB)
}

// Start claims the importer and runs a TMDB import in the background,
// bounded by timeout. The claim happens before Start returns, so of two
// concurrent callers exactly one gets ErrImportRunning. The import is
// detached from ctx cancellation but keeps its values for logging.
func (i *Importer) Start(ctx context.Context, timeout time.Duration) error {
	ctx, cancelTimeout := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	runCtx, cancel, err := i.begin(ctx, SourceTMDB)
	if err != nil {
		cancelTimeout()
		return err
	}

	go func() {
		defer cancelTimeout()
		// Failures are logged and recorded in the stats by finish.
		_, _ = i.finish(runCtx, cancel, SourceTMDB, i.loadTMDB)
	}()
	return nil
}

func (i *Importer) loadTMDB(ctx context.Context) (*LoadResult, error) {
	return LoadTMDB(ctx, i.cfg.DataDir, i.cfg.MinVoteCount)
}

// Migrate wipes the store and copies every movie of a legacy SQLite
// database at path.
func (i *Importer) Migrate(ctx context.Context, path string) (*ImportStats, error) {
	return i.run(ctx, SourceSQLite, func(ctx context.Context) (*LoadResult, error) {
		reader, err := NewSQLiteReader(path)
		if err != nil {
			return nil, err
		}
		defer func() {
			if closeErr := reader.Close(); closeErr != nil {
				logging.Warn().Err(closeErr).Msg("Error closing SQLite reader")
			}
		}()
		return reader.ReadMovies(ctx)
	})
}

func (i *Importer) run(ctx context.Context, source string, load func(context.Context) (*LoadResult, error)) (*ImportStats, error) {
	ctx, cancel, err := i.begin(ctx, source)
	if err != nil {
		return nil, err
	}
	return i.finish(ctx, cancel, source, load)
}

// begin marks an import of source as running.
func (i *Importer) begin(ctx context.Context, source string) (context.Context, context.CancelFunc, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.running {
		return nil, nil, ErrImportRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	i.running = true
	i.cancel = cancel
	i.stats = &ImportStats{Source: source, StartTime: time.Now()}
	return ctx, cancel, nil
}

// finish executes a claimed import and releases the claim.
func (i *Importer) finish(ctx context.Context, cancel context.CancelFunc, source string, load func(context.Context) (*LoadResult, error)) (*ImportStats, error) {
	err := i.execute(ctx, load)
	cancel()

	i.mu.Lock()
	i.running = false
	i.cancel = nil
	i.stats.EndTime = time.Now()
	if err != nil {
		i.stats.LastError = err.Error()
	}
	stats := *i.stats
	hooks := append([]func(){}, i.onComplete...)
	i.mu.Unlock()

	metrics.RecordImport(stats.Duration(), stats.Imported, stats.Skipped, stats.Errors, err)
	i.saveProgress(&stats)

	if err != nil {
		logging.Error().Err(err).Str("source", source).Msg("Import failed")
		return &stats, err
	}

	for _, fn := range hooks {
		fn()
	}

	logging.Info().
		Str("source", source).
		Int64("imported", stats.Imported).
		Int64("skipped", stats.Skipped).
		Int64("errors", stats.Errors).
		Dur("duration", stats.Duration()).
		Msg("Import completed")

	return &stats, nil
}

func (i *Importer) execute(ctx context.Context, load func(context.Context) (*LoadResult, error)) error {
	res, err := load(ctx)
	if err != nil {
		return fmt.Errorf("load movies: %w", err)
	}

	i.mu.Lock()
	i.stats.TotalRecords = res.Stats.TotalRecords
	i.stats.Processed = res.Stats.Processed
	i.stats.Skipped = res.Stats.Skipped
	i.stats.Errors = res.Stats.Errors
	i.mu.Unlock()

	total := len(res.Movies)
	logging.Info().Int("movies", total).Msg("Writing movies")

	err = i.store.ReplaceMovies(ctx, res.Movies, i.cfg.BatchSize, func(written, total int) {
		logging.Info().Msgf("Imported %d of %d", written, total)
	})
	if err != nil {
		return fmt.Errorf("write movies: %w", err)
	}

	i.mu.Lock()
	i.stats.Imported = int64(total)
	i.mu.Unlock()
	return nil
}

func (i *Importer) saveProgress(stats *ImportStats) {
	if i.progress == nil {
		return
	}
	if err := i.progress.Save(context.Background(), stats); err != nil {
		logging.Warn().Err(err).Msg("Failed to save import progress")
	}
}

// Stop cancels a running import.
func (i *Importer) Stop() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.running {
		return ErrNotRunning
	}
	i.cancel()
	return nil
}

// GetStats returns the statistics of the running or last import. After a
// restart it falls back to the persisted progress.
func (i *Importer) GetStats() *ImportStats {
	i.mu.RLock()
	if i.stats != nil {
		stats := *i.stats
		i.mu.RUnlock()
		return &stats
	}
	i.mu.RUnlock()

	if i.progress != nil {
		if saved, err := i.progress.Load(context.Background()); err == nil && saved != nil {
			return saved
		}
	}
	return &ImportStats{}
}

// IsRunning reports whether an import is in progress.
func (i *Importer) IsRunning() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.running
}
