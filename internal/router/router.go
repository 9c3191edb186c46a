// Package router sets up all HTTP routes and middleware chains. Routes are
// split into the public site, the read-only API and the admin-only API.
package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"nishat/internal/handlers"
	"nishat/internal/middleware"
	"nishat/web"
)

// Handlers bundles every handler group the router mounts.
type Handlers struct {
	Catalog *handlers.Catalog
	Hero    *handlers.Hero
	Upload  *handlers.Upload
	Auth    *handlers.Auth
	Admin   *handlers.Admin
	Public  *handlers.Public
}

// Options configures the middleware stack.
type Options struct {
	// AdminSentinel is the admin-auth cookie value that unlocks mutations.
	AdminSentinel string
	// HSTS enables Strict-Transport-Security.
	HSTS bool
	// PublicDir holds files served from the site root, uploads included.
	PublicDir string
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(opts Options, h Handlers) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders(opts.HSTS))

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Reads and the contact form are open to everyone.
		r.Get("/categories", h.Catalog.ListCategories)
		r.Get("/categories/{id}", h.Catalog.GetCategory)
		r.Get("/products", h.Catalog.ListProducts)
		r.Get("/products/{id}", h.Catalog.GetProduct)
		r.Get("/hero", h.Hero.List)
		r.Get("/hero/{id}", h.Hero.Get)
		r.Post("/email", handlers.Contact)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/session", h.Auth.Session)
		})

		// Mutations require the admin cookie.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(opts.AdminSentinel))

			r.Post("/categories", h.Catalog.CreateCategory)
			r.Delete("/categories/{id}", h.Catalog.DeleteCategory)

			r.Post("/products", h.Catalog.CreateProduct)
			r.Patch("/products/{id}", h.Catalog.UpdateProduct)
			r.Delete("/products/{id}", h.Catalog.DeleteProduct)

			r.Post("/hero", h.Hero.Create)
			r.Patch("/hero/{id}", h.Hero.Update)
			r.Delete("/hero/{id}", h.Hero.Delete)

			r.Post("/upload", h.Upload.Create)
			r.Get("/admin/stats", h.Admin.Stats)
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			middleware.WriteJSONError(w, "Not found", http.StatusNotFound)
		})
	})

	// Embedded site assets.
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(web.Static())))

	// Public pages.
	r.Get("/", h.Public.Home)
	r.Get("/about", h.Public.About)
	r.Get("/products", h.Public.Products)
	r.Get("/contact", h.Public.ContactPage)

	// Everything else is looked up in the public directory (uploads,
	// product photos, the fallback hero).
	files := publicFiles(opts.PublicDir)
	r.Get("/uploads/*", files)
	r.NotFound(files)

	return r
}

// publicFiles serves regular files below dir. Directories and missing
// files are 404s.
func publicFiles(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dir == "" || strings.Contains(r.URL.Path, "\x00") {
			http.NotFound(w, r)
			return
		}
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		info, err := os.Stat(name)
		if err != nil || !info.Mode().IsRegular() {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, name)
	}
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
