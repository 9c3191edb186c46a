// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"nishat/internal/document"
	"nishat/internal/models"
	"nishat/internal/slug"
)

// HeroImagesDocument is the name of the document holding hero images.
const HeroImagesDocument = "hero-images"

// HeroStore manages the rotating banner images of the public pages.
type HeroStore struct {
	doc      *document.Document[[]models.HeroImage]
	versions *document.Document[map[string]int]
	now      func() time.Time
}

// NewHeroStore returns a HeroStore on b. Call Migrate once at startup
// before serving requests.
func NewHeroStore(b document.Backend) *HeroStore {
	return &HeroStore{
		doc:      document.NewDocument(b, HeroImagesDocument, defaultHeroImages()),
		versions: document.NewDocument(b, SchemaVersionsDocument, map[string]int{}),
		now:      time.Now,
	}
}

// ListAll returns every hero image in document order.
func (s *HeroStore) ListAll(ctx context.Context) ([]models.HeroImage, error) {
	images, err := s.doc.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hero images: %w", err)
	}
	if images == nil {
		images = []models.HeroImage{}
	}
	for i := range images {
		if images[i].Page == "" {
			images[i].Page = models.DefaultHeroPage
		}
	}
	return images, nil
}

// ListActive returns active images sorted by order. An empty page matches
// every page.
func (s *HeroStore) ListActive(ctx context.Context, page models.HeroPage) ([]models.HeroImage, error) {
	return s.list(ctx, func(h models.HeroImage) bool {
		return h.IsActive && (page == "" || h.Page == page)
	})
}

// ListForPage returns the images of one page sorted by order, optionally
// only the active ones.
func (s *HeroStore) ListForPage(ctx context.Context, page models.HeroPage, activeOnly bool) ([]models.HeroImage, error) {
	return s.list(ctx, func(h models.HeroImage) bool {
		return h.Page == page && (!activeOnly || h.IsActive)
	})
}

func (s *HeroStore) list(ctx context.Context, keep func(models.HeroImage) bool) ([]models.HeroImage, error) {
	images, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.HeroImage, 0, len(images))
	for _, h := range images {
		if keep(h) {
			out = append(out, h)
		}
	}
	slices.SortStableFunc(out, func(a, b models.HeroImage) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out, nil
}

// Get returns the hero image with the given id. Returns nil if not found.
func (s *HeroStore) Get(ctx context.Context, id string) (*models.HeroImage, error) {
	images, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(images, func(h models.HeroImage) bool { return h.ID == id })
	if i < 0 {
		return nil, nil
	}
	return &images[i], nil
}

// Add appends a hero image. The id is the slug of the title plus a time
// suffix. Missing isActive, order and page take their defaults.
func (s *HeroStore) Add(ctx context.Context, in models.HeroImageInput) (*models.HeroImage, error) {
	page := in.Page
	if page == "" {
		page = models.DefaultHeroPage
	}
	if !page.Valid() {
		return nil, fmt.Errorf("add hero image: page %q: %w", page, ErrInvalid)
	}

	h := models.HeroImage{
		ID:          slug.WithSuffix(in.Title, s.now()),
		Title:       in.Title,
		Description: in.Description,
		ImagePath:   in.ImagePath,
		IsActive:    models.DefaultHeroActive,
		Order:       models.DefaultHeroOrder,
		Page:        page,
	}
	if in.IsActive != nil {
		h.IsActive = *in.IsActive
	}
	if in.Order != nil {
		h.Order = *in.Order
	}

	err := s.doc.Update(ctx, func(images *[]models.HeroImage) error {
		*images = append(*images, h)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add hero image: %w", err)
	}
	return &h, nil
}

// Update merges patch into the hero image with the given id and returns
// the merged record.
func (s *HeroStore) Update(ctx context.Context, id string, patch models.HeroImagePatch) (*models.HeroImage, error) {
	if patch.Page != nil && !patch.Page.Valid() {
		return nil, fmt.Errorf("update hero image: page %q: %w", *patch.Page, ErrInvalid)
	}

	var merged models.HeroImage
	err := s.doc.Update(ctx, func(images *[]models.HeroImage) error {
		i := slices.IndexFunc(*images, func(h models.HeroImage) bool { return h.ID == id })
		if i < 0 {
			return fmt.Errorf("hero image %q: %w", id, ErrNotFound)
		}
		patch.Apply(&(*images)[i])
		merged = (*images)[i]
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update hero image: %w", err)
	}
	if merged.Page == "" {
		merged.Page = models.DefaultHeroPage
	}
	return &merged, nil
}

// Delete removes the hero image with the given id.
func (s *HeroStore) Delete(ctx context.Context, id string) error {
	err := s.doc.Update(ctx, func(images *[]models.HeroImage) error {
		before := len(*images)
		*images = slices.DeleteFunc(*images, func(h models.HeroImage) bool { return h.ID == id })
		if len(*images) == before {
			return fmt.Errorf("hero image %q: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete hero image: %w", err)
	}
	return nil
}
