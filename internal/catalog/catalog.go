// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

// Package catalog holds the movie catalog: an ordered, immutable list of
// movies whose position is the row index into the feature matrix and the
// neighbor index. The catalog is decoded once at startup from a JSON
// artifact and never mutated afterwards, so it is safe to share across
// requests without locking.
package catalog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// Movie is a single catalog row. Index is the position within the loaded
// catalog and aligns with the feature matrix row of the same number.
type Movie struct {
	Index  int      `json:"index"`
	Title  string   `json:"title"`
	Year   int      `json:"year"`
	Genres []string `json:"genres"`
}

// Catalog is the full set of known movies, ordered by row index.
type Catalog struct {
	movies []Movie

	// byFolded maps case-folded title to the FIRST row carrying it.
	// Duplicate titles resolve to the earliest occurrence, matching the
	// lookup order of the artifact as produced.
	byFolded map[string]int

	// folded holds the case-folded titles in row order, built once so
	// the matcher does not re-fold the catalog on every request.
	folded []string
}

// movieRecord is the artifact wire form; Index is assigned from position
// during load rather than trusted from the file.
type movieRecord struct {
	Title  string   `json:"title"`
	Year   int      `json:"year"`
	Genres []string `json:"genres"`
}

// Load reads a catalog artifact from the given path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog artifact: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a JSON array of movie records from r and builds the
// catalog. Empty catalogs are rejected: a service with nothing to
// recommend cannot serve requests.
func Decode(r io.Reader) (*Catalog, error) {
	var records []movieRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog artifact: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog artifact contains no movies")
	}

	c := &Catalog{
		movies:   make([]Movie, len(records)),
		byFolded: make(map[string]int, len(records)),
		folded:   make([]string, len(records)),
	}
	for i, rec := range records {
		if rec.Title == "" {
			return nil, fmt.Errorf("catalog row %d has an empty title", i)
		}
		c.movies[i] = Movie{
			Index:  i,
			Title:  rec.Title,
			Year:   rec.Year,
			Genres: rec.Genres,
		}
		folded := Fold(rec.Title)
		c.folded[i] = folded
		if _, seen := c.byFolded[folded]; !seen {
			c.byFolded[folded] = i
		}
	}
	return c, nil
}

// New builds a catalog directly from movies. Used by tests and fixture
// generation; Load is the production path.
func New(movies []Movie) *Catalog {
	c := &Catalog{
		movies:   make([]Movie, len(movies)),
		byFolded: make(map[string]int, len(movies)),
		folded:   make([]string, len(movies)),
	}
	for i, m := range movies {
		m.Index = i
		c.movies[i] = m
		folded := Fold(m.Title)
		c.folded[i] = folded
		if _, seen := c.byFolded[folded]; !seen {
			c.byFolded[folded] = i
		}
	}
	return c
}

// Fold normalizes a title for matching: lowercased with surrounding
// whitespace removed.
func Fold(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// Len returns the number of catalog rows.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Row returns the movie at the given row index.
func (c *Catalog) Row(i int) (Movie, error) {
	if i < 0 || i >= len(c.movies) {
		return Movie{}, fmt.Errorf("row index %d out of range [0,%d)", i, len(c.movies))
	}
	return c.movies[i], nil
}

// FoldedTitles returns the case-folded titles in row order. The slice is
// shared and must not be modified.
func (c *Catalog) FoldedTitles() []string {
	return c.folded
}

// IndexOfFolded returns the first row whose case-folded title equals the
// given folded string.
func (c *Catalog) IndexOfFolded(folded string) (int, bool) {
	i, ok := c.byFolded[folded]
	return i, ok
}

// Stats summarizes the loaded catalog for the stats endpoint.
type Stats struct {
	Movies  int      `json:"movies"`
	YearMin int      `json:"year_min"`
	YearMax int      `json:"year_max"`
	Genres  []string `json:"genres"`
}

// Stats computes catalog-level summary statistics. Genres are returned
// in first-seen order.
func (c *Catalog) Stats() Stats {
	s := Stats{Movies: len(c.movies)}
	seen := make(map[string]struct{})
	for i, m := range c.movies {
		if i == 0 || m.Year < s.YearMin {
			s.YearMin = m.Year
		}
		if i == 0 || m.Year > s.YearMax {
			s.YearMax = m.Year
		}
		for _, g := range m.Genres {
			if _, ok := seen[g]; !ok {
				seen[g] = struct{}{}
				s.Genres = append(s.Genres, g)
			}
		}
	}
	return s
}
