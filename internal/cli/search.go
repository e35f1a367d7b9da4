// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/moviesoup/internal/models"
)

func newSearchCommand(a *app) *cobra.Command {
	var from, count int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search stored movies by title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := strings.TrimSpace(strings.Join(args, " "))
			if q == "" {
				return fmt.Errorf("query must not be blank")
			}
			if from < 0 {
				return fmt.Errorf("--from must not be negative, got %d", from)
			}
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}

			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			movies, err := db.SearchByTitle(cmd.Context(), q, from, count)
			if err != nil {
				return err
			}
			if movies == nil {
				movies = []models.Movie{}
			}

			if a.jsonOutput {
				return a.printJSON(models.MovieSearchResult{Query: q, From: from, Count: count, Movies: movies})
			}
			if len(movies) == 0 {
				fmt.Fprintln(a.out, mutedStyle.Render("No movies match "+strconv.Quote(q)))
				return nil
			}
			fmt.Fprintln(a.out, titleStyle.Render(fmt.Sprintf("Movies matching %q", q)))
			fmt.Fprint(a.out, renderMovies(movies))
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "number of matches to skip")
	cmd.Flags().IntVar(&count, "count", 5, "number of matches to print")
	return cmd
}

func renderMovies(movies []models.Movie) string {
	rows := make([][]string, len(movies))
	for i, m := range movies {
		rows[i] = []string{strconv.FormatInt(m.ID, 10), m.Title, yearString(m), m.Genres}
	}
	return renderTable([]string{"ID", "TITLE", "YEAR", "GENRES"}, rows)
}

func yearString(m models.Movie) string {
	if y := m.Year(); y != 0 {
		return strconv.Itoa(y)
	}
	return "-"
}
