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
	"github.com/tomtom215/moviesoup/internal/recommend"
)

func newSoupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "soup ID",
		Short: "Print a stored movie's features and soup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			movie, err := db.GetMovie(cmd.Context(), ids[0])
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return a.printJSON(movie)
			}
			fmt.Fprint(a.out, renderSoup(movie))
			return nil
		},
	}
}

// renderSoup prints the feature fields and the terms the vectorizer keeps.
func renderSoup(m *models.Movie) string {
	terms := recommend.Tokenize(m.Soup)
	return titleStyle.Render(fmt.Sprintf("%s (%s)", m.Title, yearString(*m))) + "\n" +
		renderFields([][2]string{
			{"ID", strconv.FormatInt(m.ID, 10)},
			{"Keywords", m.Keywords},
			{"Cast", m.Cast},
			{"Directors", m.Directors},
			{"Genres", m.Genres},
			{"Soup", m.Soup},
			{"Terms", fmt.Sprintf("%d: %s", len(terms), strings.Join(terms, " "))},
		})
}
