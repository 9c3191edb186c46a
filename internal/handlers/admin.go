// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"nishat/internal/models"
	"nishat/internal/store"
)

// Admin serves the admin dashboard data.
type Admin struct {
	catalog *store.CatalogStore
	heroes  *store.HeroStore
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(catalog *store.CatalogStore, heroes *store.HeroStore) *Admin {
	return &Admin{catalog: catalog, heroes: heroes}
}

// dashboardStats is the body of GET /api/admin/stats.
type dashboardStats struct {
	models.CatalogStats
	HeroImages       int            `json:"heroImages"`
	ActiveHeroImages int            `json:"activeHeroImages"`
	HeroesByPage     map[string]int `json:"heroesByPage"`
}

// Stats handles GET /api/admin/stats.
func (a *Admin) Stats(w http.ResponseWriter, r *http.Request) {
	catalog, err := a.catalog.Stats(r.Context())
	if err != nil {
		internalError(w, r, "Failed to load stats", err)
		return
	}
	images, err := a.heroes.ListAll(r.Context())
	if err != nil {
		internalError(w, r, "Failed to load stats", err)
		return
	}

	stats := dashboardStats{
		CatalogStats: *catalog,
		HeroImages:   len(images),
		HeroesByPage: make(map[string]int, len(models.HeroPages)),
	}
	for _, p := range models.HeroPages {
		stats.HeroesByPage[string(p)] = 0
	}
	for _, img := range images {
		if img.IsActive {
			stats.ActiveHeroImages++
		}
		stats.HeroesByPage[string(img.Page)]++
	}
	writeJSON(w, http.StatusOK, stats)
}
