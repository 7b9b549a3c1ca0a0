// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

package catalog

import (
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	input := `[
		{"title": "The Dark Knight", "year": 2008, "genres": ["Action", "Crime"]},
		{"title": "Inception", "year": 2010, "genres": ["Sci-Fi"]}
	]`

	c, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 movies, got %d", c.Len())
	}

	m, err := c.Row(0)
	if err != nil {
		t.Fatalf("Row(0) failed: %v", err)
	}
	if m.Title != "The Dark Knight" || m.Year != 2008 || m.Index != 0 {
		t.Errorf("unexpected row 0: %+v", m)
	}
	if len(m.Genres) != 2 || m.Genres[0] != "Action" {
		t.Errorf("unexpected genres: %v", m.Genres)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed json", `{"not": "an array"`},
		{"wrong shape", `{"title": "solo"}`},
		{"empty catalog", `[]`},
		{"empty title", `[{"title": "", "year": 2000, "genres": []}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestDuplicateFoldedTitleFirstWins(t *testing.T) {
	c := New([]Movie{
		{Title: "Heat", Year: 1995, Genres: []string{"Crime"}},
		{Title: "HEAT", Year: 1972, Genres: []string{"Drama"}},
		{Title: "heat", Year: 2006, Genres: []string{"Comedy"}},
	})

	i, ok := c.IndexOfFolded("heat")
	if !ok {
		t.Fatal("expected folded title to resolve")
	}
	if i != 0 {
		t.Errorf("expected first occurrence (row 0), got row %d", i)
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"The Dark Knight", "the dark knight"},
		{"  Inception  ", "inception"},
		{"HEAT", "heat"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Fold(tt.input); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRowOutOfRange(t *testing.T) {
	c := New([]Movie{{Title: "Solo", Year: 2018}})
	for _, i := range []int{-1, 1, 100} {
		if _, err := c.Row(i); err == nil {
			t.Errorf("Row(%d): expected error, got nil", i)
		}
	}
}

func TestStats(t *testing.T) {
	c := New([]Movie{
		{Title: "A", Year: 1999, Genres: []string{"Drama", "Crime"}},
		{Title: "B", Year: 2012, Genres: []string{"Crime"}},
		{Title: "C", Year: 2004, Genres: []string{"Comedy"}},
	})

	s := c.Stats()
	if s.Movies != 3 {
		t.Errorf("expected 3 movies, got %d", s.Movies)
	}
	if s.YearMin != 1999 || s.YearMax != 2012 {
		t.Errorf("unexpected year range: %d-%d", s.YearMin, s.YearMax)
	}
	want := []string{"Drama", "Crime", "Comedy"}
	if len(s.Genres) != len(want) {
		t.Fatalf("expected %d genres, got %v", len(want), s.Genres)
	}
	for i, g := range want {
		if s.Genres[i] != g {
			t.Errorf("genre %d: expected %q, got %q", i, g, s.Genres[i])
		}
	}
}
