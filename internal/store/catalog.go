// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"nishat/internal/document"
	"nishat/internal/models"
	"nishat/internal/slug"
)

// ProductsDocument is the name of the document holding every category and
// its products.
const ProductsDocument = "products"

// CatalogStore manages categories and their products. The whole catalog is
// one document: every mutation reads it, edits it in memory and writes it
// back under the document lock.
type CatalogStore struct {
	doc *document.Document[[]models.Category]
}

// NewCatalogStore returns a CatalogStore on b. The document is seeded with
// the default catalog on first access.
func NewCatalogStore(b document.Backend) *CatalogStore {
	return &CatalogStore{
		doc: document.NewDocument(b, ProductsDocument, defaultCatalog()),
	}
}

// ListCategories returns every category in document order.
func (s *CatalogStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	cats, err := s.doc.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	for i := range cats {
		if cats[i].Products == nil {
			cats[i].Products = []models.Product{}
		}
	}
	if cats == nil {
		cats = []models.Category{}
	}
	return cats, nil
}

// GetCategory returns the category with the given id. Returns nil if not
// found.
func (s *CatalogStore) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	cats, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(cats, func(c models.Category) bool { return c.ID == id })
	if i < 0 {
		return nil, nil
	}
	return &cats[i], nil
}

// ListProducts returns all products flattened in category order, then
// product order.
func (s *CatalogStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	cats, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	products := []models.Product{}
	for _, c := range cats {
		products = append(products, c.Products...)
	}
	return products, nil
}

// GetProduct returns the first product with the given id. Returns nil if
// not found.
func (s *CatalogStore) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(products, func(p models.Product) bool { return p.ID == id })
	if i < 0 {
		return nil, nil
	}
	return &products[i], nil
}

// AddCategory creates an empty category named name. Its id is the slug of
// the name and must not collide with an existing category.
func (s *CatalogStore) AddCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	id := slug.Generate(name)
	if id == "" {
		return nil, fmt.Errorf("category name %q has no usable characters: %w", name, ErrInvalid)
	}

	created := models.Category{ID: id, Name: name, Products: []models.Product{}}
	err := s.doc.Update(ctx, func(cats *[]models.Category) error {
		if slices.ContainsFunc(*cats, func(c models.Category) bool { return c.ID == id }) {
			return fmt.Errorf("category %q: %w", id, ErrConflict)
		}
		*cats = append(*cats, created)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add category: %w", err)
	}
	return &created, nil
}

// AddProduct appends a product to the category named by in.CategoryID.
// The id is derived from the name and is not checked for uniqueness.
func (s *CatalogStore) AddProduct(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	p := models.Product{
		ID:          slug.Generate(in.Name),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		Origin:      in.Origin,
		Packaging:   in.Packaging,
	}

	err := s.doc.Update(ctx, func(cats *[]models.Category) error {
		i := slices.IndexFunc(*cats, func(c models.Category) bool { return c.ID == in.CategoryID })
		if i < 0 {
			return fmt.Errorf("category %q: %w", in.CategoryID, ErrCategoryNotFound)
		}
		(*cats)[i].Products = append((*cats)[i].Products, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("add product: %w", err)
	}
	return &p, nil
}

// UpdateProduct merges patch into the first product with the given id and
// returns the stored result. A changed CategoryID is recorded on the
// product but does not move it between categories.
func (s *CatalogStore) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	err := s.doc.Update(ctx, func(cats *[]models.Category) error {
		for ci := range *cats {
			products := (*cats)[ci].Products
			if pi := slices.IndexFunc(products, func(p models.Product) bool { return p.ID == id }); pi >= 0 {
				patch.Apply(&products[pi])
				return nil
			}
		}
		return fmt.Errorf("product %q: %w", id, ErrNotFound)
	})
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	p, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("update product: %q vanished: %w", id, ErrNotFound)
	}
	return p, nil
}

// DeleteProduct removes every product with the given id from the first
// category that holds one.
func (s *CatalogStore) DeleteProduct(ctx context.Context, id string) error {
	err := s.doc.Update(ctx, func(cats *[]models.Category) error {
		for ci := range *cats {
			before := len((*cats)[ci].Products)
			(*cats)[ci].Products = slices.DeleteFunc((*cats)[ci].Products, func(p models.Product) bool {
				return p.ID == id
			})
			if len((*cats)[ci].Products) < before {
				return nil
			}
		}
		return fmt.Errorf("product %q: %w", id, ErrNotFound)
	})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// DeleteCategory removes the category with the given id along with any
// products it still holds. Refusing to delete a non-empty category is up
// to the caller.
func (s *CatalogStore) DeleteCategory(ctx context.Context, id string) error {
	err := s.doc.Update(ctx, func(cats *[]models.Category) error {
		before := len(*cats)
		*cats = slices.DeleteFunc(*cats, func(c models.Category) bool { return c.ID == id })
		if len(*cats) == before {
			return fmt.Errorf("category %q: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Stats counts products overall and per category.
func (s *CatalogStore) Stats(ctx context.Context) (*models.CatalogStats, error) {
	cats, err := s.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	stats := &models.CatalogStats{Categories: make([]models.CategoryCount, 0, len(cats))}
	for _, c := range cats {
		stats.TotalProducts += len(c.Products)
		stats.Categories = append(stats.Categories, models.CategoryCount{
			ID:       c.ID,
			Name:     c.Name,
			Products: len(c.Products),
		})
	}
	return stats, nil
}
