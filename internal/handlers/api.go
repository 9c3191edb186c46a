// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API and the public site pages.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"nishat/internal/middleware"
)

// maxJSONBody caps API request bodies.
const maxJSONBody = 1 << 20

// PageCache stores rendered public pages. Handlers that change the catalog
// or hero images clear it so visitors never see stale content.
type PageCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, html []byte)
	InvalidateAll(ctx context.Context)
}

// Uploader persists an uploaded file and returns the URL it is served from.
type Uploader interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("write json response failed", "error", err)
	}
}

// writeError writes the API error shape {"error": msg}.
func writeError(w http.ResponseWriter, msg string, status int) {
	middleware.WriteJSONError(w, msg, status)
}

// internalError logs err and answers 500 with a generic message.
func internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "error", err, "method", r.Method, "path", r.URL.Path)
	writeError(w, msg, http.StatusInternalServerError)
}

// decodeJSON reads a JSON request body into v. On failure it writes a 400
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// message is the success shape of delete endpoints.
type message struct {
	Message string `json:"message"`
}
