// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

// Package sparse implements the read-only CSR feature matrix backing the
// similarity space. One row per catalog movie, aligned by position; the
// matrix is produced offline by the model build pipeline and loaded here
// as an opaque artifact.
package sparse

import (
	"fmt"
	"math"
)

// Matrix is a float32 CSR (compressed sparse row) matrix. Immutable
// after construction.
type Matrix struct {
	rows int
	cols int

	// indptr has rows+1 entries; row i spans indices[indptr[i]:indptr[i+1]].
	indptr  []int64
	indices []int32
	data    []float32

	// norms caches the L2 norm of each row for cosine distance.
	norms []float32
}

// Vector is a borrowed view of a single matrix row.
type Vector struct {
	Indices []int32
	Data    []float32
	Norm    float32
}

// NewMatrix validates raw CSR components and assembles a matrix.
func NewMatrix(rows, cols int, indptr []int64, indices []int32, data []float32) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("negative matrix dimensions %dx%d", rows, cols)
	}
	if len(indptr) != rows+1 {
		return nil, fmt.Errorf("indptr length %d does not match rows+1 (%d)", len(indptr), rows+1)
	}
	if len(indices) != len(data) {
		return nil, fmt.Errorf("indices length %d does not match data length %d", len(indices), len(data))
	}
	if rows > 0 {
		if indptr[0] != 0 {
			return nil, fmt.Errorf("indptr must start at 0, got %d", indptr[0])
		}
		if indptr[rows] != int64(len(data)) {
			return nil, fmt.Errorf("indptr end %d does not match nnz %d", indptr[rows], len(data))
		}
	}
	for i := 0; i < rows; i++ {
		if indptr[i] > indptr[i+1] {
			return nil, fmt.Errorf("indptr not monotonic at row %d", i)
		}
	}
	for _, col := range indices {
		if col < 0 || int(col) >= cols {
			return nil, fmt.Errorf("column index %d out of range [0,%d)", col, cols)
		}
	}

	m := &Matrix{
		rows:    rows,
		cols:    cols,
		indptr:  indptr,
		indices: indices,
		data:    data,
	}
	m.norms = make([]float32, rows)
	for i := 0; i < rows; i++ {
		var sum float64
		for _, v := range m.rowData(i) {
			sum += float64(v) * float64(v)
		}
		m.norms[i] = float32(math.Sqrt(sum))
	}
	return m, nil
}

// FromDense builds a CSR matrix out of dense rows, dropping zeros.
// Used by fixture generation and tests; production matrices arrive
// through the artifact codec.
func FromDense(rows [][]float32, cols int) (*Matrix, error) {
	indptr := make([]int64, 0, len(rows)+1)
	indptr = append(indptr, 0)
	var indices []int32
	var data []float32
	for _, row := range rows {
		for j, v := range row {
			if v != 0 {
				indices = append(indices, int32(j))
				data = append(data, v)
			}
		}
		indptr = append(indptr, int64(len(data)))
	}
	return NewMatrix(len(rows), cols, indptr, indices, data)
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns (the feature dimension).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored non-zero values.
func (m *Matrix) NNZ() int { return len(m.data) }

func (m *Matrix) rowData(i int) []float32 {
	return m.data[m.indptr[i]:m.indptr[i+1]]
}

// Row returns a borrowed view of row i. The returned slices alias the
// matrix storage and must not be modified.
func (m *Matrix) Row(i int) (Vector, error) {
	if i < 0 || i >= m.rows {
		return Vector{}, fmt.Errorf("row index %d out of range [0,%d)", i, m.rows)
	}
	return Vector{
		Indices: m.indices[m.indptr[i]:m.indptr[i+1]],
		Data:    m.rowData(i),
		Norm:    m.norms[i],
	}, nil
}

// Dot computes the sparse dot product of two row vectors. Both index
// slices are sorted ascending as produced by the build pipeline, so a
// merge walk suffices.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] < b.Indices[j]:
			i++
		case a.Indices[i] > b.Indices[j]:
			j++
		default:
			sum += float64(a.Data[i]) * float64(b.Data[j])
			i++
			j++
		}
	}
	return sum
}

// CosineDistance returns 1 - cosine similarity of two row vectors.
// A zero vector has undefined direction; it is treated as maximally
// distant (1.0) from everything, matching scipy's convention of a zero
// similarity contribution.
func CosineDistance(a, b Vector) float64 {
	if a.Norm == 0 || b.Norm == 0 {
		return 1.0
	}
	sim := Dot(a, b) / (float64(a.Norm) * float64(b.Norm))
	// Guard against float drift pushing similarity out of [-1, 1].
	if sim > 1 {
		sim = 1
	} else if sim < -1 {
		sim = -1
	}
	return 1 - sim
}
