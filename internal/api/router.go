// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ahmedA-gif/personalized-recommendation-system/internal/config"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/middleware"
)

// Router wires handlers and middleware into the HTTP routing tree.
type Router struct {
	handlers *Handlers
	cfg      *config.APIConfig
	ui       http.Handler
}

// NewRouter creates a router. ui serves the embedded single-page
// frontend at the root path; pass nil to disable it.
func NewRouter(handlers *Handlers, cfg *config.APIConfig, ui http.Handler) *Router {
	return &Router{handlers: handlers, cfg: cfg, ui: ui}
}

// Setup configures all routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiSecurityHeaders)

		// Health endpoints stay outside the lookup rate limit so
		// monitors can poll freely.
		r.Route("/health", func(r chi.Router) {
			r.Get("/", router.handlers.Health)
			r.Get("/live", router.handlers.HealthLive)
			r.Get("/ready", router.handlers.HealthReady)
		})

		r.Group(func(r chi.Router) {
			if router.cfg.RateLimitEnabled {
				r.Use(httprate.LimitByIP(router.cfg.RateLimitReqs, router.cfg.RateLimitWindow))
			}
			r.Post("/recommendations", router.handlers.Recommend)
			r.Get("/catalog/stats", router.handlers.CatalogStats)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	if router.ui != nil {
		r.Handle("/*", router.ui)
	}

	return r
}

// apiSecurityHeaders adds baseline security headers to API responses.
func apiSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}
