// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"nishat/internal/models"
	"nishat/internal/slug"
	"nishat/internal/store"
)

// Catalog serves the category and product endpoints.
type Catalog struct {
	catalog *store.CatalogStore
	pages   PageCache
}

// NewCatalog creates a new Catalog handler group.
func NewCatalog(catalog *store.CatalogStore, pages PageCache) *Catalog {
	return &Catalog{catalog: catalog, pages: pages}
}

// ListCategories handles GET /api/categories.
func (h *Catalog) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		internalError(w, r, "Failed to fetch categories", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
}

// GetCategory handles GET /api/categories/{id}.
func (h *Catalog) GetCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := h.catalog.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		internalError(w, r, "Failed to fetch category", err)
		return
	}
	if cat == nil {
		writeError(w, "Category not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// CreateCategory handles POST /api/categories.
func (h *Catalog) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if msg := validateCategoryName(body.Name); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	cat, err := h.catalog.AddCategory(r.Context(), body.Name)
	switch {
	case errors.Is(err, store.ErrConflict):
		writeError(w, fmt.Sprintf("Category with ID %s already exists", slug.Generate(body.Name)), http.StatusConflict)
		return
	case errors.Is(err, store.ErrInvalid):
		writeError(w, "Category name must contain letters or numbers", http.StatusBadRequest)
		return
	case err != nil:
		internalError(w, r, "Failed to add category", err)
		return
	}

	h.pages.InvalidateAll(r.Context())
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Category added successfully",
		"category": cat,
	})
}

// DeleteCategory handles DELETE /api/categories/{id}. Categories that
// still hold products are refused.
func (h *Catalog) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cat, err := h.catalog.GetCategory(r.Context(), id)
	if err != nil {
		internalError(w, r, "Failed to delete category", err)
		return
	}
	if cat == nil {
		writeError(w, "Category not found", http.StatusNotFound)
		return
	}
	if len(cat.Products) > 0 {
		writeError(w, "Cannot delete category with products. Move or delete the products first.", http.StatusBadRequest)
		return
	}

	err = h.catalog.DeleteCategory(r.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, "Category not found", http.StatusNotFound)
		return
	case err != nil:
		internalError(w, r, "Failed to delete category", err)
		return
	}

	h.pages.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, message{Message: "Category deleted successfully"})
}

// ListProducts handles GET /api/products. The categories are included so
// the admin UI can render both from one request.
func (h *Catalog) ListProducts(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		internalError(w, r, "Failed to fetch products", err)
		return
	}
	products := make([]models.Product, 0)
	for _, c := range cats {
		products = append(products, c.Products...)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"products":   products,
		"categories": cats,
	})
}

// GetProduct handles GET /api/products/{id}.
func (h *Catalog) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		internalError(w, r, "Failed to fetch product", err)
		return
	}
	if p == nil {
		writeError(w, "Product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreateProduct handles POST /api/products.
func (h *Catalog) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var in models.ProductInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if msg := validateProduct(in); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	p, err := h.catalog.AddProduct(r.Context(), in)
	switch {
	case errors.Is(err, store.ErrCategoryNotFound):
		writeError(w, "Category not found", http.StatusBadRequest)
		return
	case err != nil:
		internalError(w, r, "Failed to add product", err)
		return
	}

	h.pages.InvalidateAll(r.Context())
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Product added successfully",
		"product": p,
	})
}

// UpdateProduct handles PATCH /api/products/{id}.
func (h *Catalog) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var patch models.ProductPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	if msg := validateProductPatch(patch); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	p, err := h.catalog.UpdateProduct(r.Context(), chi.URLParam(r, "id"), patch)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, "Product not found", http.StatusNotFound)
		return
	case err != nil:
		internalError(w, r, "Failed to update product", err)
		return
	}

	h.pages.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Product updated successfully",
		"product": p,
	})
}

// DeleteProduct handles DELETE /api/products/{id}.
func (h *Catalog) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	err := h.catalog.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, "Product not found", http.StatusNotFound)
		return
	case err != nil:
		internalError(w, r, "Failed to delete product", err)
		return
	}

	h.pages.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, message{Message: "Product deleted successfully"})
}
