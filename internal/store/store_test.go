// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedA-gif/personalized-recommendation-system/internal/catalog"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/knn"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/sparse"
)

var fixtureMovies = []catalog.Movie{
	{Title: "The Dark Knight", Year: 2008, Genres: []string{"Action", "Crime"}},
	{Title: "Batman Begins", Year: 2005, Genres: []string{"Action"}},
	{Title: "Inception", Year: 2010, Genres: []string{"Sci-Fi"}},
}

var fixtureVectors = [][]float32{
	{1.0, 0.0, 0.0},
	{0.9, 0.1, 0.0},
	{0.0, 1.0, 0.0},
}

// writeArtifacts materializes a complete, consistent artifact set in
// dir using the same encoders the model build pipeline uses.
func writeArtifacts(t *testing.T, dir string) Config {
	t.Helper()

	catData, err := json.Marshal(fixtureMovies)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "movies.json"), catData, 0o644))

	m, err := sparse.FromDense(fixtureVectors, 3)
	require.NoError(t, err)
	mf, err := os.Create(filepath.Join(dir, "tfidf_matrix.bin.gz"))
	require.NoError(t, err)
	require.NoError(t, sparse.EncodeMatrix(mf, m))
	require.NoError(t, mf.Close())

	xf, err := os.Create(filepath.Join(dir, "knn_index.bin"))
	require.NoError(t, err)
	require.NoError(t, knn.Encode(xf, knn.New(knn.MetricCosine, 3, 3)))
	require.NoError(t, xf.Close())

	return Config{
		Dir:     dir,
		Catalog: "movies.json",
		Matrix:  "tfidf_matrix.bin.gz",
		Index:   "knn_index.bin",
	}
}

func TestOpen(t *testing.T) {
	cfg := writeArtifacts(t, t.TempDir())

	s, err := Open(cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, s.Catalog().Len())
	assert.Equal(t, 3, s.Matrix().Rows())
	assert.Equal(t, 3, s.Index().Samples())

	// The index must already be bound and queryable.
	got, err := s.Index().KNeighborsRow(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 1, got[1].Index)
}

func TestOpenMissingArtifacts(t *testing.T) {
	base := writeArtifacts(t, t.TempDir())

	for _, tt := range []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing catalog", func(c *Config) { c.Catalog = "nope.json" }},
		{"missing matrix", func(c *Config) { c.Matrix = "nope.bin.gz" }},
		{"missing index", func(c *Config) { c.Index = "nope.bin" }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			_, err := Open(cfg)
			assert.Error(t, err)
		})
	}
}

func TestOpenMalformedArtifact(t *testing.T) {
	dir := t.TempDir()
	cfg := writeArtifacts(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tfidf_matrix.bin.gz"), []byte("junk"), 0o644))

	_, err := Open(cfg)
	assert.Error(t, err)
}

func TestAssembleRowAlignment(t *testing.T) {
	cat := catalog.New(fixtureMovies)

	twoRows, err := sparse.FromDense(fixtureVectors[:2], 3)
	require.NoError(t, err)
	threeRows, err := sparse.FromDense(fixtureVectors, 3)
	require.NoError(t, err)

	// Catalog/matrix row count mismatch.
	_, err = Assemble(cat, twoRows, knn.New(knn.MetricCosine, 2, 3))
	assert.Error(t, err)

	// Matrix/index sample count mismatch.
	_, err = Assemble(cat, threeRows, knn.New(knn.MetricCosine, 5, 3))
	assert.Error(t, err)

	// Matrix/index dimension mismatch.
	_, err = Assemble(cat, threeRows, knn.New(knn.MetricCosine, 3, 7))
	assert.Error(t, err)

	// Fully aligned artifacts assemble cleanly.
	_, err = Assemble(cat, threeRows, knn.New(knn.MetricCosine, 3, 3))
	assert.NoError(t, err)
}

func TestResolvePaths(t *testing.T) {
	assert.Equal(t, filepath.Join("models", "a.bin"), resolve("models", "a.bin"))
	assert.Equal(t, "/abs/a.bin", resolve("models", "/abs/a.bin"))
	assert.Equal(t, "a.bin", resolve("", "a.bin"))
}
