// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

package recommend

import (
	"fmt"

	"github.com/ahmedA-gif/personalized-recommendation-system/internal/matcher"
)

// Config contains the recommendation engine parameters.
type Config struct {
	// TopN is the default number of recommendations per lookup.
	TopN int `koanf:"top_n" json:"top_n"`

	// MaxN caps client-requested result sizes.
	MaxN int `koanf:"max_n" json:"max_n"`

	// MatchCutoff is the minimum fuzzy-match similarity ratio (0-1).
	MatchCutoff float64 `koanf:"match_cutoff" json:"match_cutoff"`
}

// DefaultConfig returns the engine defaults: top 5 neighbors with the
// permissive 0.3 match cutoff of the original model.
func DefaultConfig() *Config {
	return &Config{
		TopN:        5,
		MaxN:        25,
		MatchCutoff: matcher.DefaultCutoff,
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1, got %d", c.TopN)
	}
	if c.MaxN < c.TopN {
		return fmt.Errorf("max_n (%d) must be >= top_n (%d)", c.MaxN, c.TopN)
	}
	if c.MatchCutoff <= 0 || c.MatchCutoff > 1 {
		return fmt.Errorf("match_cutoff must be in (0, 1], got %g", c.MatchCutoff)
	}
	return nil
}
