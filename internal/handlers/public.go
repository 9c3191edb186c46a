// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"nishat/internal/cache"
	"nishat/internal/models"
	"nishat/internal/render"
	"nishat/internal/store"
)

// Public groups handlers for the public site. It checks the page cache
// before rendering and stores rendered results on a miss.
type Public struct {
	renderer *render.Renderer
	catalog  *store.CatalogStore
	heroes   *store.HeroStore
	pages    PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, catalog *store.CatalogStore, heroes *store.HeroStore, pages PageCache) *Public {
	return &Public{renderer: renderer, catalog: catalog, heroes: heroes, pages: pages}
}

// Home renders /.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "home", "Home", models.HeroPageHome)
}

// About renders /about.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "about", "About Us", models.HeroPageAbout)
}

// Products renders /products with the full catalog.
func (p *Public) Products(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "products", "Products", models.HeroPageProducts)
}

// ContactPage renders /contact.
func (p *Public) ContactPage(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, "contact", "Contact Us", models.HeroPageContact)
}

func (p *Public) serve(w http.ResponseWriter, r *http.Request, tmpl, title string, page models.HeroPage) {
	ctx := r.Context()
	key := cache.PageKey(r.URL.Path)

	if cached, ok := p.pages.Get(ctx, key); ok {
		writeHTML(w, cached)
		return
	}

	data := &render.PageData{Title: title, Page: page}
	complete := true

	// A failed lookup degrades to the fallback hero rather than an error page.
	heroes, err := p.heroes.ListActive(ctx, page)
	if err != nil {
		slog.Error("list hero images failed", "error", err, "page", page)
		complete = false
	}
	data.Heroes = heroes

	if page == models.HeroPageProducts {
		cats, err := p.catalog.ListCategories(ctx)
		if err != nil {
			slog.Error("list categories failed", "error", err)
			complete = false
		}
		data.Categories = cats
	}

	var buf bytes.Buffer
	if err := p.renderer.Render(&buf, tmpl, data); err != nil {
		slog.Error("render page failed", "error", err, "template", tmpl)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if complete {
		p.pages.Set(ctx, key, buf.Bytes())
	}
	writeHTML(w, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}
