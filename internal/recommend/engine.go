// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

// Package recommend resolves a free-text movie title to a catalog row
// and returns its nearest neighbors in the pretrained similarity space.
// The whole pass is a bounded in-memory computation: one fuzzy scan
// over the catalog titles plus one neighbor query against the loaded
// index. There is no per-request state and no background work.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/ahmedA-gif/personalized-recommendation-system/internal/matcher"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/metrics"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/store"
)

// ErrNotFound indicates no catalog title cleared the fuzzy-match
// cutoff. Per-request and recoverable: the user may resubmit.
var ErrNotFound = errors.New("movie not found")

// ErrEmptyQuery indicates an empty or whitespace-only title. Callers
// are expected to guard for this before invoking the engine; it is
// surfaced as input validation, not as a lookup failure.
var ErrEmptyQuery = errors.New("empty query")

// Engine performs title resolution and neighbor lookup against a loaded
// model store. Safe for concurrent use: the store is read-only and the
// matcher is stateless across calls.
type Engine struct {
	config  *Config
	store   *store.Store
	matcher *matcher.Matcher
	logger  zerolog.Logger

	lookupCount atomic.Int64
}

// NewEngine creates an engine over the given model store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, st *store.Store, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if st == nil {
		return nil, fmt.Errorf("model store is required")
	}
	return &Engine{
		config:  cfg,
		store:   st,
		matcher: matcher.New(cfg.MatchCutoff),
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// LookupCount returns the number of lookups served since startup.
func (e *Engine) LookupCount() int64 {
	return e.lookupCount.Load()
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Recommend resolves title to its closest catalog row and returns up to
// limit nearest neighbors ordered most-similar first, together with the
// derived chart payloads. A limit <= 0 uses the configured default;
// limits above the configured maximum are clamped.
//
// The query row is its own nearest neighbor at distance zero, so the
// index is asked for limit+1 results and the self row is dropped. When
// the catalog holds fewer than limit+1 movies the result truncates
// gracefully.
func (e *Engine) Recommend(ctx context.Context, title string, limit int) (*Response, error) {
	e.lookupCount.Add(1)

	cat := e.store.Catalog()
	if limit <= 0 {
		limit = e.config.TopN
	}
	if limit > e.config.MaxN {
		limit = e.config.MaxN
	}

	match, ok := e.matcher.BestMatch(title, cat)
	if !ok {
		metrics.RecordLookup(metrics.OutcomeNotFound, 0)
		e.logger.Debug().Str("title", title).Msg("No catalog title cleared the match cutoff")
		if matcherInputEmpty(title) {
			return nil, ErrEmptyQuery
		}
		return nil, ErrNotFound
	}
	metrics.RecordLookup(metrics.OutcomeMatched, match.Ratio)

	query, err := cat.Row(match.Row)
	if err != nil {
		return nil, fmt.Errorf("resolve matched row: %w", err)
	}

	start := time.Now()
	neighbors, err := e.store.Index().KNeighborsRow(match.Row, limit+1)
	if err != nil {
		return nil, fmt.Errorf("neighbor query for row %d: %w", match.Row, err)
	}
	metrics.RecordKNNQuery(time.Since(start))

	recs := make([]Recommendation, 0, limit)
	for _, n := range neighbors {
		if n.Index == match.Row {
			continue
		}
		movie, err := cat.Row(n.Index)
		if err != nil {
			return nil, fmt.Errorf("resolve neighbor row %d: %w", n.Index, err)
		}
		recs = append(recs, Recommendation{Movie: movie, Distance: n.Distance})
	}
	// The self row always occupies one slot of the limit+1 results, but
	// guard against duplicate vectors pushing it out.
	if len(recs) > limit {
		recs = recs[:limit]
	}

	e.logger.Debug().
		Str("query", query.Title).
		Float64("ratio", match.Ratio).
		Int("results", len(recs)).
		Dur("knn_elapsed", time.Since(start)).
		Msg("Lookup resolved")

	return &Response{
		Query:           query,
		MatchRatio:      match.Ratio,
		Recommendations: recs,
		Charts:          BuildCharts(recs),
	}, nil
}

// matcherInputEmpty reports whether the raw title folds to nothing.
func matcherInputEmpty(title string) bool {
	for _, r := range title {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
