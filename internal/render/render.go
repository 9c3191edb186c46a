// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Every page template is paired with the shared base layout at startup.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"nishat/internal/markdown"
	"nishat/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// FallbackHeroImage is shown when a page has no active hero images.
const FallbackHeroImage = "/herosection.png"

// PageData holds all data passed to public templates.
type PageData struct {
	Title      string             // Page title for <title> tag
	Page       models.HeroPage    // Active navigation entry
	Heroes     []models.HeroImage // Active hero images, sorted by order
	Categories []models.Category  // Catalog (products page only)
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// New creates a Renderer by parsing every page template from the
// embedded filesystem together with base.html.
func New() (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"imageURL": models.RootRelative,
			"markdown": markdown.Safe,
			"navClass": func(current models.HeroPage, target string) string {
				if string(current) == target {
					return "nav-link active"
				}
				return "nav-link"
			},
			"year": func() int { return time.Now().Year() },
			"fallbackHero": func() string { return FallbackHeroImage },
		},
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" || !strings.HasSuffix(name, ".html") {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return r, nil
}

// Render executes the named page inside the base layout.
func (rn *Renderer) Render(w io.Writer, name string, data *PageData) error {
	tmpl, ok := rn.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	return nil
}

// Has reports whether a page template named name was loaded.
func (rn *Renderer) Has(name string) bool {
	_, ok := rn.templates[name]
	return ok
}
