// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/moviesoup/internal/logging"
	"github.com/tomtom215/moviesoup/internal/models"
	"github.com/tomtom215/moviesoup/internal/recommend"
)

func newRecommendCommand(a *app) *cobra.Command {
	var years string

	cmd := &cobra.Command{
		Use:   "recommend --years START-END ID...",
		Short: "Recommend movies similar to the given favourites",
		Example: `  moviesoup recommend --years 1990-2000 862 13
  moviesoup recommend --years 1995 862 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			favourites, err := parseIDs(args)
			if err != nil {
				return err
			}
			yr, err := recommend.ParseYearRange(years)
			if err != nil {
				return err
			}

			db, err := a.openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			ec := recommend.DefaultConfig()
			if a.cfg.Recommend.CandidateBudget > 0 {
				ec.CandidateBudget = a.cfg.Recommend.CandidateBudget
			}
			if a.cfg.Recommend.MaxResults > 0 {
				ec.MaxResults = a.cfg.Recommend.MaxResults
			}
			engine, err := recommend.NewEngine(ec, db, logging.WithComponent("recommend"))
			if err != nil {
				return err
			}

			recs, err := engine.Recommend(cmd.Context(), favourites, yr)
			if err != nil {
				return err
			}

			out := make([]models.RecommendedMovie, len(recs))
			for i, r := range recs {
				out[i] = models.RecommendedMovie{Movie: r.Movie, Score: r.Score}
			}
			if a.jsonOutput {
				return a.printJSON(out)
			}
			if len(out) == 0 {
				fmt.Fprintln(a.out, mutedStyle.Render("No recommendations in "+yr.String()))
				return nil
			}
			fmt.Fprintln(a.out, titleStyle.Render(fmt.Sprintf("Recommendations for %v in %s", favourites, yr)))
			fmt.Fprint(a.out, renderRecommendations(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&years, "years", "", "release year window, START-END or a single YEAR")
	_ = cmd.MarkFlagRequired("years")
	return cmd
}

// parseIDs parses positive movie ids.
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, &recommend.ValidationError{Field: "favourites", Value: arg, Err: fmt.Errorf("not a positive movie id")}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func renderRecommendations(recs []models.RecommendedMovie) string {
	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(r.ID, 10),
			r.Title,
			yearString(r.Movie),
			strconv.FormatFloat(r.Score, 'f', 4, 64),
		}
	}
	return renderTable([]string{"#", "ID", "TITLE", "YEAR", "SCORE"}, rows)
}
