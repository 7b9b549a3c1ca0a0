// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

// Package matcher resolves free-text user input to a catalog row using
// approximate string matching. Scoring uses difflib SequenceMatcher
// ratios at character granularity, with the same quick-ratio gates the
// reference get_close_matches implementation applies before paying for
// a full ratio computation.
package matcher

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/ahmedA-gif/personalized-recommendation-system/internal/catalog"
)

// DefaultCutoff is the minimum similarity ratio for a match, on a 0-1
// scale. Deliberately permissive: users type fragments ("dark knight")
// far more often than full titles.
const DefaultCutoff = 0.3

// Matcher scores catalog titles against user input.
type Matcher struct {
	cutoff float64
}

// Match is a resolved catalog row with its similarity ratio.
type Match struct {
	Row   int
	Ratio float64
}

// New creates a matcher with the given similarity cutoff. Cutoffs
// outside (0, 1] fall back to DefaultCutoff.
func New(cutoff float64) *Matcher {
	if cutoff <= 0 || cutoff > 1 {
		cutoff = DefaultCutoff
	}
	return &Matcher{cutoff: cutoff}
}

// Cutoff returns the configured similarity cutoff.
func (m *Matcher) Cutoff() float64 {
	return m.cutoff
}

// BestMatch finds the single catalog row whose title best matches the
// query. Returns false when no candidate reaches the cutoff. The query
// and all titles are case-folded before scoring; when several rows fold
// to the same title, the first occurrence wins.
//
// Ties in ratio resolve to the earliest candidate, matching the stable
// single-best selection of the reference implementation.
func (m *Matcher) BestMatch(query string, c *catalog.Catalog) (Match, bool) {
	folded := catalog.Fold(query)
	if folded == "" {
		return Match{}, false
	}

	// Seq2 carries the query: SetSeq2 builds the junk/char index once,
	// SetSeq1 per candidate is cheap.
	sm := difflib.NewMatcher(nil, chars(folded))

	bestRatio := m.cutoff
	bestTitle := ""
	found := false
	for _, title := range c.FoldedTitles() {
		sm.SetSeq1(chars(title))
		if sm.RealQuickRatio() < bestRatio || sm.QuickRatio() < bestRatio {
			continue
		}
		ratio := sm.Ratio()
		if ratio > bestRatio || (!found && ratio == bestRatio) {
			bestRatio = ratio
			bestTitle = title
			found = true
		}
	}
	if !found {
		return Match{}, false
	}

	// Resolve the winning folded title to its first catalog occurrence.
	row, ok := c.IndexOfFolded(bestTitle)
	if !ok {
		return Match{}, false
	}
	return Match{Row: row, Ratio: bestRatio}, true
}

// chars splits a string into per-rune elements for character-level
// sequence matching.
func chars(s string) []string {
	return strings.Split(s, "")
}
