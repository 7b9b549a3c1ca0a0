// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

// Package config loads and validates service configuration via Koanf v2
// with layered sources (highest priority wins): environment variables,
// optional YAML config file, built-in defaults.
package config

import (
	"fmt"
	"time"

	"github.com/ahmedA-gif/personalized-recommendation-system/internal/validation"
)

// Config is the root configuration for the recommendation service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Models    ModelsConfig    `koanf:"models"`
	Recommend RecommendConfig `koanf:"recommend"`
	API       APIConfig       `koanf:"api"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host" validate:"required"`
	Port    int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// ModelsConfig locates the pretrained model artifacts. All three files
// must exist before startup; their absence is a fatal condition.
type ModelsConfig struct {
	Dir     string `koanf:"dir" validate:"required"`
	Catalog string `koanf:"catalog" validate:"required"`
	Matrix  string `koanf:"matrix" validate:"required"`
	Index   string `koanf:"index" validate:"required"`
}

// RecommendConfig holds lookup parameters.
type RecommendConfig struct {
	TopN        int     `koanf:"top_n" validate:"min=1,max=50"`
	MaxN        int     `koanf:"max_n" validate:"min=1,max=100"`
	MatchCutoff float64 `koanf:"match_cutoff" validate:"gt=0,lte=1"`
}

// APIConfig holds HTTP API settings.
type APIConfig struct {
	CORSOrigins      []string      `koanf:"cors_origins"`
	RateLimitReqs    int           `koanf:"rate_limit_requests" validate:"min=1"`
	RateLimitWindow  time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitEnabled bool          `koanf:"rate_limit_enabled"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8501,
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Models: ModelsConfig{
			Dir:     "models",
			Catalog: "movies.json",
			Matrix:  "tfidf_matrix.bin.gz",
			Index:   "knn_index.bin",
		},
		Recommend: RecommendConfig{
			TopN:        5,
			MaxN:        25,
			MatchCutoff: 0.3,
		},
		API: APIConfig{
			CORSOrigins:      []string{"*"},
			RateLimitReqs:    60,
			RateLimitWindow:  time.Minute,
			RateLimitEnabled: true,
		},
	}
}

// Validate checks struct tags plus cross-field invariants.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("invalid configuration: %s", verr.Error())
	}
	if c.Recommend.MaxN < c.Recommend.TopN {
		return fmt.Errorf("recommend.max_n (%d) must be >= recommend.top_n (%d)",
			c.Recommend.MaxN, c.Recommend.TopN)
	}
	return nil
}
