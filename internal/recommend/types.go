// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

package recommend

import (
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/catalog"
)

// Recommendation is a recommended movie with its cosine distance to the
// query vector (smaller is more similar).
type Recommendation struct {
	catalog.Movie
	Distance float64 `json:"distance"`
}

// Response is the full result of one lookup: the resolved query row,
// the ratio the matcher accepted, the ordered neighbor list and the
// chart payloads derived from it. Transient, produced per request.
type Response struct {
	Query           catalog.Movie    `json:"query"`
	MatchRatio      float64          `json:"match_ratio"`
	Recommendations []Recommendation `json:"recommendations"`
	Charts          Charts           `json:"charts"`
}

// Charts bundles the three visualizations the UI renders from a result
// set. All three are pure transformations of the recommendation list.
type Charts struct {
	WordCloud     []WordCloudEntry `json:"word_cloud"`
	GenreCounts   []GenreCount     `json:"genre_counts"`
	YearHistogram []YearBucket     `json:"year_histogram"`
}

// WordCloudEntry is one word of the genre word cloud. Weight is the
// count normalized against the most frequent genre, in (0, 1].
type WordCloudEntry struct {
	Text   string  `json:"text"`
	Count  int     `json:"count"`
	Weight float64 `json:"weight"`
}

// GenreCount is one bar of the genre distribution chart.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// YearBucket is one bin of the release-year histogram. Start is
// inclusive; End is exclusive except for the last bucket.
type YearBucket struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Count int     `json:"count"`
}
