// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nishat/internal/models"
	"nishat/internal/store"
)

// Hero serves the hero image endpoints.
type Hero struct {
	heroes *store.HeroStore
	pages  PageCache
}

// NewHero creates a new Hero handler group.
func NewHero(heroes *store.HeroStore, pages PageCache) *Hero {
	return &Hero{heroes: heroes, pages: pages}
}

// List handles GET /api/hero. ?active=true keeps only active images and
// ?page= restricts the result to one page.
func (h *Hero) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := models.HeroPage(q.Get("page"))
	if page != "" && !page.Valid() {
		writeError(w, "Invalid page", http.StatusBadRequest)
		return
	}
	activeOnly := q.Get("active") == "true"

	var (
		images []models.HeroImage
		err    error
	)
	switch {
	case activeOnly:
		images, err = h.heroes.ListActive(r.Context(), page)
	case page != "":
		images, err = h.heroes.ListForPage(r.Context(), page, false)
	default:
		images, err = h.heroes.ListAll(r.Context())
	}
	if err != nil {
		internalError(w, r, "Failed to fetch hero images", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"heroImages": images})
}

// Get handles GET /api/hero/{id}.
func (h *Hero) Get(w http.ResponseWriter, r *http.Request) {
	img, err := h.heroes.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		internalError(w, r, "Failed to fetch hero image", err)
		return
	}
	if img == nil {
		writeError(w, "Hero image not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, img)
}

// Create handles POST /api/hero.
func (h *Hero) Create(w http.ResponseWriter, r *http.Request) {
	var in models.HeroImageInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateHero(in); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	img, err := h.heroes.Add(r.Context(), in)
	switch {
	case errors.Is(err, store.ErrInvalid):
		writeError(w, "Invalid page", http.StatusBadRequest)
		return
	case err != nil:
		internalError(w, r, "Failed to add hero image", err)
		return
	}

	h.pages.InvalidateAll(r.Context())
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "Hero image added successfully",
		"heroImage": img,
	})
}

// Update handles PATCH /api/hero/{id}.
func (h *Hero) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.HeroImagePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if msg := validateHeroPatch(patch); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	img, err := h.heroes.Update(r.Context(), chi.URLParam(r, "id"), patch)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, "Hero image not found", http.StatusNotFound)
		return
	case errors.Is(err, store.ErrInvalid):
		writeError(w, "Invalid page", http.StatusBadRequest)
		return
	case err != nil:
		internalError(w, r, "Failed to update hero image", err)
		return
	}

	h.pages.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Hero image updated successfully",
		"heroImage": img,
	})
}

// Delete handles DELETE /api/hero/{id}.
func (h *Hero) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.heroes.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, "Hero image not found", http.StatusNotFound)
		return
	case err != nil:
		internalError(w, r, "Failed to delete hero image", err)
		return
	}

	h.pages.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, message{Message: "Hero image deleted successfully"})
}
