// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

// Package main is the entry point for the recommendation server.
//
// The server answers one question: given a movie the user enjoyed, what
// should they watch next? It resolves free-text input to a catalog row
// with fuzzy matching, then returns the row's nearest neighbors in a
// pretrained textual-similarity space alongside chart data for the UI.
//
// # Application Architecture
//
// Startup initializes components in order:
//
//  1. Configuration: Koanf v2 layered sources (env > config.yaml > defaults)
//  2. Logging: zerolog, JSON or console output
//  3. Model store: catalog, term-frequency matrix and neighbor index
//     artifacts, loaded once and validated for row alignment
//  4. Recommendation engine: fuzzy matcher + k-NN lookup
//  5. HTTP server: Chi router, REST API, Prometheus metrics, embedded UI
//
// The model artifacts are a hard startup dependency: a missing,
// malformed or misaligned artifact terminates the process before it
// accepts any request. There is no hot reload; ship a new model by
// restarting the process.
//
// # Configuration
//
// Key environment variables (see internal/config for the full set):
//
//	SERVER_PORT             listen port (default 8501)
//	MODELS_DIR              artifact directory (default ./models)
//	RECOMMEND_TOP_N         neighbors per lookup (default 5)
//	RECOMMEND_MATCH_CUTOFF  fuzzy match threshold (default 0.3)
//	LOG_LEVEL, LOG_FORMAT   logging controls
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: stop accepting new
// connections, drain in-flight requests for up to 10 seconds, exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ahmedA-gif/personalized-recommendation-system/internal/api"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/config"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/logging"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/recommend"
	"github.com/ahmedA-gif/personalized-recommendation-system/internal/store"
	"github.com/ahmedA-gif/personalized-recommendation-system/web"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("models_dir", cfg.Models.Dir).
		Int("top_n", cfg.Recommend.TopN).
		Float64("match_cutoff", cfg.Recommend.MatchCutoff).
		Msg("Configuration loaded")

	// The model store is the only startup dependency. Any artifact
	// problem is fatal: the service cannot serve without a consistent
	// model.
	st, err := store.Open(store.Config{
		Dir:     cfg.Models.Dir,
		Catalog: cfg.Models.Catalog,
		Matrix:  cfg.Models.Matrix,
		Index:   cfg.Models.Index,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load model artifacts")
	}

	engine, err := recommend.NewEngine(&recommend.Config{
		TopN:        cfg.Recommend.TopN,
		MaxN:        cfg.Recommend.MaxN,
		MatchCutoff: cfg.Recommend.MatchCutoff,
	}, st, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	handlers := api.NewHandlers(engine, st)
	router := api.NewRouter(handlers, &cfg.API, web.Handler())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	// Serve until a shutdown signal arrives.
	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", addr).Msg("HTTP server listening")
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
		if err := server.Close(); err != nil {
			logging.Error().Err(err).Msg("Forced close failed")
		}
	}
	logging.Info().Msg("Server stopped")
}
