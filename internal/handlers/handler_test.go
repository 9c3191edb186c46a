// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Stores run on the in-memory document backend.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"nishat/internal/document"
	"nishat/internal/render"
	"nishat/internal/store"
)

// fakeCache records page cache traffic.
type fakeCache struct {
	mu            sync.Mutex
	pages         map[string][]byte
	invalidations int
}

func newFakeCache() *fakeCache {
	return &fakeCache{pages: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.pages[key]
	return b, ok
}

func (c *fakeCache) Set(_ context.Context, key string, html []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[key] = append([]byte(nil), html...)
}

func (c *fakeCache) InvalidateAll(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidations++
	clear(c.pages)
}

func (c *fakeCache) invalidated() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.invalidations
}

// fakeUploader keeps uploaded files in memory.
type fakeUploader struct {
	mu    sync.Mutex
	files map[string][]byte
	err   error
}

func (u *fakeUploader) Put(_ context.Context, name, _ string, data []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.files[name] = data
	return "/uploads/" + name, nil
}

// testEnv wires every handler group to fresh stores.
type testEnv struct {
	catalog *store.CatalogStore
	heroes  *store.HeroStore
	pages   *fakeCache
	files   *fakeUploader
	router  chi.Router
}

const testSentinel = "test-sentinel"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	backend := document.NewMemoryBackend()
	env := &testEnv{
		catalog: store.NewCatalogStore(backend),
		heroes:  store.NewHeroStore(backend),
		pages:   newFakeCache(),
		files:   &fakeUploader{files: make(map[string][]byte)},
	}

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	catalogH := NewCatalog(env.catalog, env.pages)
	heroH := NewHero(env.heroes, env.pages)
	uploadH := NewUpload(env.files)
	authH := NewAuth(AuthConfig{
		Email:       "admin@example.com",
		Password:    "admin123",
		CookieValue: testSentinel,
	})
	adminH := NewAdmin(env.catalog, env.heroes)
	publicH := NewPublic(renderer, env.catalog, env.heroes, env.pages)

	r := chi.NewRouter()
	r.Get("/", publicH.Home)
	r.Get("/about", publicH.About)
	r.Get("/products", publicH.Products)
	r.Get("/contact", publicH.ContactPage)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", catalogH.ListCategories)
		r.Post("/categories", catalogH.CreateCategory)
		r.Get("/categories/{id}", catalogH.GetCategory)
		r.Delete("/categories/{id}", catalogH.DeleteCategory)

		r.Get("/products", catalogH.ListProducts)
		r.Post("/products", catalogH.CreateProduct)
		r.Get("/products/{id}", catalogH.GetProduct)
		r.Patch("/products/{id}", catalogH.UpdateProduct)
		r.Delete("/products/{id}", catalogH.DeleteProduct)

		r.Get("/hero", heroH.List)
		r.Post("/hero", heroH.Create)
		r.Get("/hero/{id}", heroH.Get)
		r.Patch("/hero/{id}", heroH.Update)
		r.Delete("/hero/{id}", heroH.Delete)

		r.Post("/upload", uploadH.Create)
		r.Post("/email", Contact)

		r.Post("/auth/login", authH.Login)
		r.Post("/auth/logout", authH.Logout)
		r.Get("/auth/session", authH.Session)
		r.Get("/admin/stats", adminH.Stats)
	})

	env.router = r
	return env
}

// do sends a request with an optional JSON body.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rdr = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, rdr)
	if rdr != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a recorded JSON response.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

// errorOf returns the "error" field of a JSON error response.
func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[map[string]string](t, rec)["error"]
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}

// failingBackend fails every operation.
type failingBackend struct{}

var errBackend = errors.New("disk on fire")

func (failingBackend) Ensure(context.Context, string, []byte) (bool, error) { return false, errBackend }
func (failingBackend) Load(context.Context, string) ([]byte, error)         { return nil, errBackend }
func (failingBackend) Save(context.Context, string, []byte) error           { return errBackend }

func ptr[T any](v T) *T { return &v }

