// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

// Package store loads the three pretrained model artifacts (catalog,
// sparse feature matrix, neighbor index) exactly once and bundles them
// into an immutable shared handle. There is no write path and no hot
// reload: a new model requires a process restart.
package store

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ahmedA-gif/personalized-recommendation-system/internal/catalog"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/knn"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/logging"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/metrics"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/sparse"
)

// Config locates the model artifacts on disk. Relative catalog, matrix
// and index paths are resolved against Dir.
type Config struct {
	Dir     string `koanf:"dir" validate:"required"`
	Catalog string `koanf:"catalog" validate:"required"`
	Matrix  string `koanf:"matrix" validate:"required"`
	Index   string `koanf:"index" validate:"required"`
}

// DefaultConfig mirrors the artifact layout the model build pipeline
// produces.
func DefaultConfig() Config {
	return Config{
		Dir:     "models",
		Catalog: "movies.json",
		Matrix:  "tfidf_matrix.bin.gz",
		Index:   "knn_index.bin",
	}
}

// Store is the read-only bundle of loaded artifacts. All fields are
// populated before the first request and never mutated, so the handle
// is safely shareable across requests without locking.
type Store struct {
	catalog *catalog.Catalog
	matrix  *sparse.Matrix
	index   *knn.Index
}

// Open loads all three artifacts and verifies the row-alignment
// invariant: catalog rows == matrix rows == trained sample count.
// Any failure here is fatal for the caller; the service cannot answer
// requests with a partial or inconsistent model.
func Open(cfg Config) (*Store, error) {
	start := time.Now()
	logger := logging.WithComponent("store")

	cat, err := catalog.Load(resolve(cfg.Dir, cfg.Catalog))
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	matrix, err := sparse.LoadMatrix(resolve(cfg.Dir, cfg.Matrix))
	if err != nil {
		return nil, fmt.Errorf("load feature matrix: %w", err)
	}

	index, err := knn.Load(resolve(cfg.Dir, cfg.Index))
	if err != nil {
		return nil, fmt.Errorf("load neighbor index: %w", err)
	}

	s, err := Assemble(cat, matrix, index)
	if err != nil {
		return nil, err
	}

	metrics.RecordModelLoad(cat.Len(), matrix.Cols(), time.Since(start))
	logger.Info().
		Int("movies", cat.Len()).
		Int("dimension", matrix.Cols()).
		Int("nnz", matrix.NNZ()).
		Dur("elapsed", time.Since(start)).
		Msg("Model artifacts loaded")
	return s, nil
}

// Assemble validates already-decoded artifacts and binds the index to
// its matrix. Split out from Open so tests can build stores from
// in-memory fixtures.
func Assemble(cat *catalog.Catalog, matrix *sparse.Matrix, index *knn.Index) (*Store, error) {
	if cat.Len() != matrix.Rows() {
		return nil, fmt.Errorf("catalog has %d movies but feature matrix has %d rows", cat.Len(), matrix.Rows())
	}
	if err := index.Bind(matrix); err != nil {
		return nil, fmt.Errorf("bind neighbor index: %w", err)
	}
	return &Store{catalog: cat, matrix: matrix, index: index}, nil
}

// Catalog returns the loaded movie catalog.
func (s *Store) Catalog() *catalog.Catalog { return s.catalog }

// Matrix returns the loaded feature matrix.
func (s *Store) Matrix() *sparse.Matrix { return s.matrix }

// Index returns the loaded neighbor index, bound to the matrix.
func (s *Store) Index() *knn.Index { return s.index }

func resolve(dir, path string) string {
	if dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
