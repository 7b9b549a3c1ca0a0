// Personalized Recommendation System - Content-Based Movie Discovery
// Copyright 2026 Ahmed A. (ahmedA-gif)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ahmedA-gif/personalized-recommendation-system

// Package web embeds the single-page frontend. All presentation logic
// lives client-side; the server only hands out static files.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// Handler serves the embedded frontend with static/index.html at /.
func Handler() http.Handler {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// Unreachable: the static directory is compiled in.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
