// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

// Package api provides the HTTP surface of the recommendation service:
// the lookup endpoint, catalog stats, health endpoints and the embedded
// single-page UI.
package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ahmedA-gif/personalized-recommendation-system/internal/logging"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/models"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/recommend"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/store"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/validation"
)

// Error codes returned by the API.
const (
	CodeEmptyQuery    = "EMPTY_QUERY"
	CodeMovieNotFound = "MOVIE_NOT_FOUND"
	CodeInvalidBody   = "INVALID_BODY"
	CodeInternal      = "INTERNAL_ERROR"
)

// Handlers holds the dependencies of all HTTP handlers. Constructed
// once at startup; every field is read-only afterwards.
type Handlers struct {
	engine    *recommend.Engine
	store     *store.Store
	startTime time.Time
}

// NewHandlers creates the handler set.
func NewHandlers(engine *recommend.Engine, st *store.Store) *Handlers {
	return &Handlers{
		engine:    engine,
		store:     st,
		startTime: time.Now(),
	}
}

// Recommend handles POST /api/v1/recommendations.
//
// Outcomes per input:
//   - malformed body or invalid limit -> 400 INVALID_BODY / VALIDATION_ERROR
//   - empty title -> 400 EMPTY_QUERY (a prompt, not an error condition)
//   - no fuzzy match over the cutoff -> 404 MOVIE_NOT_FOUND
//   - match -> 200 with the resolved row, neighbor list and chart data
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RecommendRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, CodeInvalidBody, "Request body must be valid JSON", err)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		// Mirrors the UI prompt: empty input is guidance, not a lookup.
		respondError(w, http.StatusBadRequest, CodeEmptyQuery,
			"Please enter a movie title to get recommendations", nil)
		return
	}

	start := time.Now()
	resp, err := h.engine.Recommend(ctx, title, req.Limit)
	switch {
	case errors.Is(err, recommend.ErrEmptyQuery):
		respondError(w, http.StatusBadRequest, CodeEmptyQuery,
			"Please enter a movie title to get recommendations", nil)
		return
	case errors.Is(err, recommend.ErrNotFound):
		ctxLog := logging.Ctx(ctx)
		ctxLog.Info().
			Str("title", sanitizeLogValue(title)).
			Msg("No match for lookup")
		respondError(w, http.StatusNotFound, CodeMovieNotFound,
			"Movie not found. Try being more specific or check spelling.", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, CodeInternal,
			"Lookup failed", err)
		return
	}

	ctxLog := logging.Ctx(ctx)
	ctxLog.Info().
		Str("title", sanitizeLogValue(title)).
		Str("resolved", resp.Query.Title).
		Float64("ratio", resp.MatchRatio).
		Int("results", len(resp.Recommendations)).
		Msg("Lookup succeeded")

	respondSuccess(w, resp, time.Since(start))
}

// CatalogStats handles GET /api/v1/catalog/stats.
func (h *Handlers) CatalogStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, h.store.Catalog().Stats(), time.Since(start))
}

// healthStatus is the payload of the full health endpoint.
type healthStatus struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Movies        int     `json:"movies"`
	Dimension     int     `json:"dimension"`
	Lookups       int64   `json:"lookups"`
}

// Health handles GET /api/v1/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, healthStatus{
		Status:        "ok",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Movies:        h.store.Catalog().Len(),
		Dimension:     h.store.Matrix().Cols(),
		Lookups:       h.engine.LookupCount(),
	}, 0)
}

// HealthLive handles GET /api/v1/health/live: process is up.
func (h *Handlers) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]string{"status": "alive"}, 0)
}

// HealthReady handles GET /api/v1/health/ready: the model store is
// loaded and non-empty. The store is loaded before the server starts,
// so readiness failing here means startup wiring is broken.
func (h *Handlers) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.store == nil || h.store.Catalog().Len() == 0 {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY",
			"Model store is not loaded", nil)
		return
	}
	respondSuccess(w, map[string]string{"status": "ready"}, 0)
}
