// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package recommend

import "strings"

// MaxNamesPerField is how many names each feature field keeps.
const MaxNamesPerField = 3

// DirectorJob is the crew job kept by Directors.
const DirectorJob = "Director"

// NamedEntity is one element of a TMDB keyword, genre, company, cast or
// crew list.
type NamedEntity struct {
	Name string `json:"name"`
	Job  string `json:"job,omitempty"`
}

// Stringify joins the names of the first three entries with commas.
func Stringify(list []NamedEntity) string {
	if len(list) > MaxNamesPerField {
		list = list[:MaxNamesPerField]
	}
	names := make([]string, len(list))
	for i, e := range list {
		names[i] = e.Name
	}
	return strings.Join(names, ",")
}

// Directors keeps crew members whose job is exactly "Director" and then
// applies the Stringify rule.
func Directors(crew []NamedEntity) string {
	directors := make([]NamedEntity, 0, MaxNamesPerField)
	for _, member := range crew {
		if member.Job == DirectorJob {
			directors = append(directors, member)
		}
	}
	return Stringify(directors)
}

// ComposeSoup builds the soup of a movie from its comma-joined feature
// fields. Each name becomes one lower-case token without spaces, and tokens
// are separated by single spaces.
func ComposeSoup(keywords, cast, directors, genres string) string {
	soup := strings.Join([]string{keywords, cast, directors, genres}, ",")
	soup = strings.ToLower(soup)
	soup = strings.ReplaceAll(soup, " ", "")
	return strings.ReplaceAll(soup, ",", " ")
}
