// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package recommend

import "testing"

func TestStringify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		list []NamedEntity
		want string
	}{
		{"empty", nil, ""},
		{"single", []NamedEntity{{Name: "Action"}}, "Action"},
		{
			"first three only",
			[]NamedEntity{{Name: "Action"}, {Name: "Drama"}, {Name: "Science Fiction"}, {Name: "Thriller"}},
			"Action,Drama,Science Fiction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Stringify(tt.list); got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDirectors(t *testing.T) {
	t.Parallel()

	crew := []NamedEntity{
		{Name: "Hans Zimmer", Job: "Original Music Composer"},
		{Name: "Christopher Nolan", Job: "Director"},
		{Name: "Emma Thomas", Job: "Producer"},
		{Name: "Jonathan Nolan", Job: "Director"},
		{Name: "A", Job: "Director"},
		{Name: "B", Job: "Director"},
		{Name: "C", Job: "director"},
	}

	want := "Christopher Nolan,Jonathan Nolan,A"
	if got := Directors(crew); got != want {
		t.Errorf("Directors() = %q, want %q", got, want)
	}
	if got := Directors(nil); got != "" {
		t.Errorf("Directors(nil) = %q, want empty", got)
	}
}

func TestComposeSoup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                              string
		keywords, cast, directors, genres string
		want                              string
	}{
		{
			name:      "multi word names collapse",
			keywords:  "time travel,dream",
			cast:      "Tom Hanks,Leonardo DiCaprio",
			directors: "Christopher Nolan",
			genres:    "Science Fiction,Action",
			want:      "timetravel dream tomhanks leonardodicaprio christophernolan sciencefiction action",
		},
		{
			name:   "empty fields leave extra separators",
			genres: "Drama",
			want:   "   drama",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ComposeSoup(tt.keywords, tt.cast, tt.directors, tt.genres)
			if got != tt.want {
				t.Errorf("ComposeSoup() = %q, want %q", got, tt.want)
			}
		})
	}
}
