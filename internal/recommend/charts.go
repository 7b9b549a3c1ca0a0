// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

package recommend

import (
	"sort"
)

// yearBins matches the fixed bin count of the original release-year
// histogram.
const yearBins = 15

// BuildCharts derives the three chart payloads from a recommendation
// list. Pure function: same input, same output, no shared state.
func BuildCharts(recs []Recommendation) Charts {
	counts := genreCounts(recs)
	return Charts{
		WordCloud:     buildWordCloud(counts),
		GenreCounts:   counts,
		YearHistogram: buildYearHistogram(recs),
	}
}

// genreCounts tallies genre occurrences across the result set, sorted
// by descending count with ties broken alphabetically so output is
// stable across runs.
func genreCounts(recs []Recommendation) []GenreCount {
	tally := make(map[string]int)
	for _, r := range recs {
		for _, g := range r.Genres {
			tally[g]++
		}
	}
	out := make([]GenreCount, 0, len(tally))
	for g, n := range tally {
		out = append(out, GenreCount{Genre: g, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}

// buildWordCloud converts genre counts into word-cloud entries with
// weights normalized against the most frequent genre.
func buildWordCloud(counts []GenreCount) []WordCloudEntry {
	if len(counts) == 0 {
		return nil
	}
	max := counts[0].Count
	out := make([]WordCloudEntry, len(counts))
	for i, c := range counts {
		out[i] = WordCloudEntry{
			Text:   c.Genre,
			Count:  c.Count,
			Weight: float64(c.Count) / float64(max),
		}
	}
	return out
}

// buildYearHistogram bins release years into yearBins equal-width
// buckets spanning the observed range. A single distinct year collapses
// into one bucket.
func buildYearHistogram(recs []Recommendation) []YearBucket {
	if len(recs) == 0 {
		return nil
	}

	minY, maxY := recs[0].Year, recs[0].Year
	for _, r := range recs[1:] {
		if r.Year < minY {
			minY = r.Year
		}
		if r.Year > maxY {
			maxY = r.Year
		}
	}

	if minY == maxY {
		return []YearBucket{{Start: float64(minY), End: float64(maxY), Count: len(recs)}}
	}

	width := float64(maxY-minY) / yearBins
	buckets := make([]YearBucket, yearBins)
	for i := range buckets {
		buckets[i].Start = float64(minY) + float64(i)*width
		buckets[i].End = float64(minY) + float64(i+1)*width
	}
	for _, r := range recs {
		bin := int(float64(r.Year-minY) / width)
		if bin >= yearBins {
			// The maximum year lands exactly on the upper edge; the
			// last bucket is closed on both ends.
			bin = yearBins - 1
		}
		buckets[bin].Count++
	}
	return buckets
}
