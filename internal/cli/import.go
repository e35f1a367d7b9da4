// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	movieimport "github.com/tomtom215/moviesoup/internal/import"
)

func newImportCommand(a *app) *cobra.Command {
	var (
		dataDir  string
		minVotes int
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the stored movies with the TMDB CSV files",
		Long: `Reads movies_metadata.csv, keywords.csv and credits.csv from the data
directory, builds each movie's soup and replaces every stored movie in one
transaction. Interrupting the command rolls the transaction back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("data-dir") {
				a.cfg.Import.DataDir = dataDir
			}
			if cmd.Flags().Changed("min-votes") {
				if minVotes < 0 {
					return fmt.Errorf("--min-votes must not be negative, got %d", minVotes)
				}
				a.cfg.Import.MinVoteCount = minVotes
			}

			return a.runImport(func(imp *movieimport.Importer) (*movieimport.ImportStats, error) {
				return imp.Import(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVar(&dataDir, "data-dir", "", "directory holding the TMDB CSV files (default import.data_dir)")
	cmd.Flags().IntVar(&minVotes, "min-votes", 0, "drop movies with fewer votes (default import.min_vote_count)")
	return cmd
}

func newMigrateCommand(a *app) *cobra.Command {
	var sqlitePath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy movies from a legacy SQLite database",
		Long: `Reads the movies_movie table of a legacy SQLite database and replaces
every stored movie with its rows. Rows without a soup are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runImport(func(imp *movieimport.Importer) (*movieimport.ImportStats, error) {
				return imp.Migrate(cmd.Context(), sqlitePath)
			})
		},
	}

	cmd.Flags().StringVar(&sqlitePath, "sqlite", "", "path to the legacy SQLite database")
	_ = cmd.MarkFlagRequired("sqlite")
	return cmd
}

// runImport opens the store, runs fn with a fresh importer and prints its
// statistics. Progress is persisted when import.progress_path is set so a
// running server reports CLI imports too.
func (a *app) runImport(fn func(*movieimport.Importer) (*movieimport.ImportStats, error)) error {
	db, err := a.openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	var progress movieimport.ProgressTracker = movieimport.NewInMemoryProgress()
	if a.cfg.Import.ProgressPath != "" {
		bp, err := movieimport.OpenBadgerProgress(a.cfg.Import.ProgressPath)
		if err != nil {
			return fmt.Errorf("open import progress store: %w", err)
		}
		defer bp.Close()
		progress = bp
	}

	stats, err := fn(movieimport.NewImporter(&a.cfg.Import, db, progress))
	if err != nil {
		return err
	}

	if a.jsonOutput {
		return a.printJSON(stats.ToSummary(false))
	}
	fmt.Fprintln(a.out, successStyle.Render("Import completed"))
	fmt.Fprint(a.out, renderStats(stats))
	return nil
}

func renderStats(s *movieimport.ImportStats) string {
	return renderFields([][2]string{
		{"Source", s.Source},
		{"Rows", strconv.FormatInt(s.TotalRecords, 10)},
		{"Imported", strconv.FormatInt(s.Imported, 10)},
		{"Skipped", strconv.FormatInt(s.Skipped, 10)},
		{"Errors", strconv.FormatInt(s.Errors, 10)},
		{"Duration", s.Duration().Round(time.Millisecond).String()},
	})
}
