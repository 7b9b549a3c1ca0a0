// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

// Package knn implements the pretrained nearest-neighbor index: exact
// brute-force cosine search over the sparse feature matrix, equivalent
// to the original model's NearestNeighbors(metric="cosine",
// algorithm="brute"). The index artifact carries only metadata (metric,
// trained sample count, dimension); the vectors themselves live in the
// feature matrix the index is bound to at load time.
package knn

import (
	"fmt"
	"sort"

	"github.com/ahmedA-gif/personalized-recommendation-system/internal/sparse"
)

// MetricCosine is the only metric the model build pipeline produces.
const MetricCosine = "cosine"

// Neighbor is a single search result.
type Neighbor struct {
	// Index is the catalog/matrix row of the neighbor.
	Index int `json:"index"`

	// Distance is the cosine distance to the query vector, in [0, 2].
	Distance float64 `json:"distance"`
}

// Index is the trained neighbor index bound to its feature matrix.
// Read-only after Bind; safe for concurrent queries.
type Index struct {
	metric  string
	samples int
	dim     int
	matrix  *sparse.Matrix
}

// Metric returns the distance metric name.
func (ix *Index) Metric() string { return ix.metric }

// Samples returns the number of vectors the index was trained on.
func (ix *Index) Samples() int { return ix.samples }

// Dim returns the feature dimension the index was trained on.
func (ix *Index) Dim() int { return ix.dim }

// Bind attaches the feature matrix the index was trained over. Fails if
// the matrix shape disagrees with the trained metadata.
func (ix *Index) Bind(m *sparse.Matrix) error {
	if m.Rows() != ix.samples {
		return fmt.Errorf("matrix has %d rows but index was trained on %d samples", m.Rows(), ix.samples)
	}
	if m.Cols() != ix.dim {
		return fmt.Errorf("matrix dimension %d does not match trained dimension %d", m.Cols(), ix.dim)
	}
	ix.matrix = m
	return nil
}

// KNeighbors returns the k nearest rows to the given query vector in
// ascending distance order. Distance ties break by ascending row index
// so repeated queries are deterministic. Truncates gracefully when the
// index holds fewer than k vectors.
func (ix *Index) KNeighbors(query sparse.Vector, k int) ([]Neighbor, error) {
	if ix.matrix == nil {
		return nil, fmt.Errorf("index is not bound to a feature matrix")
	}
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}

	results := make([]Neighbor, 0, ix.samples)
	for i := 0; i < ix.samples; i++ {
		row, err := ix.matrix.Row(i)
		if err != nil {
			return nil, err
		}
		results = append(results, Neighbor{
			Index:    i,
			Distance: sparse.CosineDistance(query, row),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Index < results[j].Index
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}

// KNeighborsRow runs KNeighbors with row i's own vector as the query.
// Row i itself is always part of the result set at distance 0.
func (ix *Index) KNeighborsRow(i, k int) ([]Neighbor, error) {
	if ix.matrix == nil {
		return nil, fmt.Errorf("index is not bound to a feature matrix")
	}
	query, err := ix.matrix.Row(i)
	if err != nil {
		return nil, err
	}
	return ix.KNeighbors(query, k)
}
