// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package services

import (
	"context"
	"errors"

	movieimport "github.com/tomtom215/moviesoup/internal/import"
	"github.com/tomtom215/moviesoup/internal/logging"
)

// Importer is the lifecycle of the TMDB bulk importer.
type Importer interface {
	Import(ctx context.Context) (*movieimport.ImportStats, error)
	IsRunning() bool
	Stop() error
}

// ImportService owns the importer's lifetime inside the supervisor tree.
//
// With autoStart it runs one import as soon as it starts. A failed import is
// logged and not retried; restarting would rewrite the movie table in a
// loop. In both modes it then waits for shutdown and cancels any import
// still running, including ones started over HTTP.
type ImportService struct {
	importer  Importer
	name      string
	autoStart bool
}

// NewImportService creates a new import service wrapper.
func NewImportService(importer Importer, autoStart bool) *ImportService {
	return &ImportService{
		importer:  importer,
		name:      "movie-import",
		autoStart: autoStart,
	}
}

// Serve implements suture.Service.
func (s *ImportService) Serve(ctx context.Context) error {
	if s.autoStart {
		s.runImport(ctx)
	} else {
		logging.Info().Msg("Import service started (on-demand mode - use API to trigger)")
	}

	<-ctx.Done()

	if s.importer.IsRunning() {
		logging.Info().Msg("Stopping running import due to shutdown")
		if err := s.importer.Stop(); err != nil && !errors.Is(err, movieimport.ErrNotRunning) {
			logging.Warn().Err(err).Msg("Failed to stop import")
		}
	}
	return ctx.Err()
}

func (s *ImportService) runImport(ctx context.Context) {
	logging.Info().Msg("Starting automatic movie import")
	stats, err := s.importer.Import(ctx)
	switch {
	case err == nil:
		logging.Info().
			Int64("imported", stats.Imported).
			Int64("skipped", stats.Skipped).
			Int64("errors", stats.Errors).
			Dur("duration", stats.Duration()).
			Msg("Automatic import completed")
	case ctx.Err() != nil:
		logging.Info().Msg("Import canceled due to shutdown")
	case errors.Is(err, movieimport.ErrImportRunning):
		logging.Info().Msg("Import already running, automatic import skipped")
	default:
		logging.Error().Err(err).Msg("Automatic import failed")
	}
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *ImportService) String() string {
	return s.name
}
