// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Product is a single catalog entry. It always lives inside the Products
// list of exactly one Category.
//
// ID is derived from Name and is best-effort unique only: two products with
// the same name receive the same ID, and lookups by ID return the first.
type Product struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Origin      string `json:"origin"`
	Packaging   string `json:"packaging"`
}

// Category groups products for display. Products are kept in insertion
// order, which is also the display order.
type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

// ProductInput carries the caller-supplied fields of a new product.
type ProductInput struct {
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Origin      string `json:"origin"`
	Packaging   string `json:"packaging"`
}

// ProductPatch is a partial product update. Nil fields are left untouched.
// There is deliberately no ID field.
type ProductPatch struct {
	CategoryID  *string `json:"categoryId,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Origin      *string `json:"origin,omitempty"`
	Packaging   *string `json:"packaging,omitempty"`
}

// Apply shallow-merges the patch onto p.
func (pp ProductPatch) Apply(p *Product) {
	setString(&p.CategoryID, pp.CategoryID)
	setString(&p.Name, pp.Name)
	setString(&p.Description, pp.Description)
	setString(&p.Image, pp.Image)
	setString(&p.Origin, pp.Origin)
	setString(&p.Packaging, pp.Packaging)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// CatalogStats summarizes the catalog for the admin dashboard.
type CatalogStats struct {
	TotalProducts int             `json:"totalProducts"`
	Categories    []CategoryCount `json:"categories"`
}

// CategoryCount is the number of products in one category.
type CategoryCount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Products int    `json:"products"`
}
