// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 8501 {
		t.Errorf("expected default port 8501, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected default host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected default logging config: %+v", cfg.Logging)
	}
	if cfg.Models.Dir != "models" || cfg.Models.Catalog != "movies.json" {
		t.Errorf("unexpected default models config: %+v", cfg.Models)
	}
	if cfg.Recommend.TopN != 5 || cfg.Recommend.MaxN != 25 {
		t.Errorf("unexpected default recommend config: %+v", cfg.Recommend)
	}
	if cfg.Recommend.MatchCutoff != 0.3 {
		t.Errorf("expected default cutoff 0.3, got %v", cfg.Recommend.MatchCutoff)
	}
	if !cfg.API.RateLimitEnabled || cfg.API.RateLimitReqs != 60 {
		t.Errorf("unexpected default api config: %+v", cfg.API)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MODELS_DIR", "/opt/models")
	t.Setenv("RECOMMEND_TOP_N", "10")
	t.Setenv("API_RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Models.Dir != "/opt/models" {
		t.Errorf("expected models dir /opt/models, got %s", cfg.Models.Dir)
	}
	if cfg.Recommend.TopN != 10 {
		t.Errorf("expected top_n 10, got %d", cfg.Recommend.TopN)
	}
	if cfg.API.RateLimitEnabled {
		t.Error("expected rate limiting disabled")
	}
}

func TestLoadEnvIgnoresUnmappedVariables(t *testing.T) {
	t.Setenv("SERVER_SECRET", "should-not-leak")
	t.Setenv("PATHOLOGICAL", "value")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Port != 8501 {
		t.Errorf("unrelated env vars changed config: %+v", cfg.Server)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 8080
  timeout: 45s
recommend:
  top_n: 8
  max_n: 40
api:
  cors_origins:
    - https://example.com
  rate_limit_requests: 120
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 45*time.Second {
		t.Errorf("expected timeout 45s, got %v", cfg.Server.Timeout)
	}
	if cfg.Recommend.TopN != 8 || cfg.Recommend.MaxN != 40 {
		t.Errorf("unexpected recommend config: %+v", cfg.Recommend)
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "https://example.com" {
		t.Errorf("unexpected cors origins: %v", cfg.API.CORSOrigins)
	}
	if cfg.API.RateLimitReqs != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.API.RateLimitReqs)
	}
	// Unset file values fall through to defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level info, got %s", cfg.Logging.Level)
	}
}

func TestEnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 8080\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("SERVER_PORT", "7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected env to win with port 7000, got %d", cfg.Server.Port)
	}
}

func TestCORSOriginsFromEnv(t *testing.T) {
	t.Setenv("API_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.API.CORSOrigins) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.API.CORSOrigins)
	}
	for i := range want {
		if cfg.API.CORSOrigins[i] != want[i] {
			t.Errorf("origin %d: expected %q, got %q", i, want[i], cfg.API.CORSOrigins[i])
		}
	}
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"port out of range", "SERVER_PORT", "70000", "validation"},
		{"bad log level", "LOG_LEVEL", "verbose", "validation"},
		{"bad log format", "LOG_FORMAT", "xml", "validation"},
		{"zero top_n", "RECOMMEND_TOP_N", "0", "validation"},
		{"cutoff above one", "RECOMMEND_MATCH_CUTOFF", "1.5", "validation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q in error, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidateCrossField(t *testing.T) {
	cfg := defaultConfig()
	cfg.Recommend.TopN = 20
	cfg.Recommend.MaxN = 10

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error when max_n < top_n")
	}
	if !strings.Contains(err.Error(), "max_n") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SERVER_PORT", "server.port"},
		{"server_port", "server.port"},
		{"RECOMMEND_MATCH_CUTOFF", "recommend.match_cutoff"},
		{"API_CORS_ORIGINS", "api.cors_origins"},
		{"HOME", ""},
		{"UNRELATED_VAR", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
