// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package main

import (
	"fmt"

	"github.com/tomtom215/moviesoup/internal/config"
	"github.com/tomtom215/moviesoup/internal/database"
	movieimport "github.com/tomtom215/moviesoup/internal/import"
	"github.com/tomtom215/moviesoup/internal/logging"
)

// importComponents holds the importer and the progress store it owns.
type importComponents struct {
	importer *movieimport.Importer
	badger   *movieimport.BadgerProgress
}

// initImport creates the importer. Progress is persisted in BadgerDB when
// import.progress_path is set and kept in memory otherwise.
func initImport(cfg *config.Config, db *database.DB) (*importComponents, error) {
	c := &importComponents{}

	var progress movieimport.ProgressTracker
	if cfg.Import.ProgressPath != "" {
		bp, err := movieimport.OpenBadgerProgress(cfg.Import.ProgressPath)
		if err != nil {
			return nil, fmt.Errorf("open import progress store: %w", err)
		}
		c.badger = bp
		progress = bp
		logging.Info().Str("path", cfg.Import.ProgressPath).Msg("Import progress persisted in BadgerDB")
	} else {
		progress = movieimport.NewInMemoryProgress()
	}

	c.importer = movieimport.NewImporter(&cfg.Import, db, progress)

	logging.Info().
		Str("data_dir", cfg.Import.DataDir).
		Int("min_vote_count", cfg.Import.MinVoteCount).
		Bool("auto_start", cfg.Import.AutoStart).
		Msg("Importer initialized")
	return c, nil
}

// Close releases the progress store.
func (c *importComponents) Close() {
	if c.badger == nil {
		return
	}
	if err := c.badger.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing import progress store")
	}
}
