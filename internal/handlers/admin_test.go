// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"testing"

	"nishat/internal/models"
)

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t)
	createHero(t, env, models.HeroImageInput{Title: "Off", ImagePath: "a.jpg", Page: models.HeroPageAbout, IsActive: ptr(false)})

	rec := env.do(t, http.MethodGet, "/api/admin/stats", nil)
	expectStatus(t, rec, http.StatusOK)

	stats := decode[dashboardStats](t, rec)
	if stats.TotalProducts != 8 {
		t.Errorf("totalProducts = %d, want 8", stats.TotalProducts)
	}
	if len(stats.Categories) != 3 || stats.Categories[0].Products != 4 {
		t.Errorf("categories = %+v", stats.Categories)
	}
	if stats.HeroImages != 2 || stats.ActiveHeroImages != 1 {
		t.Errorf("heroes = %d active = %d", stats.HeroImages, stats.ActiveHeroImages)
	}
	if stats.HeroesByPage["about"] != 1 || stats.HeroesByPage["home"] != 1 || stats.HeroesByPage["contact"] != 0 {
		t.Errorf("heroesByPage = %v", stats.HeroesByPage)
	}
}
