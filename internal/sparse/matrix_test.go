// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

package sparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixValidation(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		indptr  []int64
		indices []int32
		data    []float32
	}{
		{"indptr too short", 2, 3, []int64{0, 1}, []int32{0}, []float32{1}},
		{"indptr not starting at zero", 1, 3, []int64{1, 1}, nil, nil},
		{"indptr end mismatch", 1, 3, []int64{0, 2}, []int32{0}, []float32{1}},
		{"indptr not monotonic", 2, 3, []int64{0, 2, 1}, []int32{0, 1}, []float32{1, 2}},
		{"indices/data length mismatch", 1, 3, []int64{0, 1}, []int32{0, 1}, []float32{1}},
		{"column out of range", 1, 3, []int64{0, 1}, []int32{3}, []float32{1}},
		{"negative column", 1, 3, []int64{0, 1}, []int32{-1}, []float32{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMatrix(tt.rows, tt.cols, tt.indptr, tt.indices, tt.data)
			assert.Error(t, err)
		})
	}
}

func TestRowAndNorm(t *testing.T) {
	m, err := FromDense([][]float32{
		{3, 0, 4},
		{0, 0, 0},
	}, 3)
	require.NoError(t, err)

	row, err := m.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 2}, row.Indices)
	assert.InDelta(t, 5.0, float64(row.Norm), 1e-6)

	zero, err := m.Row(1)
	require.NoError(t, err)
	assert.Empty(t, zero.Data)
	assert.Zero(t, zero.Norm)

	_, err = m.Row(2)
	assert.Error(t, err)
}

func TestDot(t *testing.T) {
	m, err := FromDense([][]float32{
		{1, 2, 0, 3},
		{0, 4, 5, 1},
		{0, 0, 0, 0},
	}, 4)
	require.NoError(t, err)

	a, _ := m.Row(0)
	b, _ := m.Row(1)
	z, _ := m.Row(2)

	assert.InDelta(t, 11.0, Dot(a, b), 1e-6) // 2*4 + 3*1
	assert.Zero(t, Dot(a, z))
	assert.InDelta(t, 14.0, Dot(a, a), 1e-6)
}

func TestCosineDistance(t *testing.T) {
	m, err := FromDense([][]float32{
		{1, 0},
		{2, 0},
		{0, 1},
		{0, 0},
	}, 2)
	require.NoError(t, err)

	same, _ := m.Row(0)
	scaled, _ := m.Row(1)
	ortho, _ := m.Row(2)
	zero, _ := m.Row(3)

	assert.InDelta(t, 0.0, CosineDistance(same, scaled), 1e-6)
	assert.InDelta(t, 1.0, CosineDistance(same, ortho), 1e-6)
	assert.Equal(t, 1.0, CosineDistance(same, zero))
	assert.Equal(t, 1.0, CosineDistance(zero, zero))

	// Distance to self is exactly zero despite float rounding.
	assert.Equal(t, 0.0, CosineDistance(same, same))
	assert.False(t, math.IsNaN(CosineDistance(same, ortho)))
}
