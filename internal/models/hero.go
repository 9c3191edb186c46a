// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "strings"

// HeroPage names the public page a hero image rotates on.
type HeroPage string

const (
	HeroPageHome     HeroPage = "home"
	HeroPageAbout    HeroPage = "about"
	HeroPageProducts HeroPage = "products"
	HeroPageContact  HeroPage = "contact"
)

// HeroPages lists every valid page. The first entry is the default for
// records that predate the page field.
var HeroPages = []HeroPage{HeroPageHome, HeroPageAbout, HeroPageProducts, HeroPageContact}

// DefaultHeroPage is assigned when a record has no page.
const DefaultHeroPage = HeroPageHome

// Defaults applied by HeroStore.Add when the caller omits a value.
const (
	DefaultHeroOrder  = 99
	DefaultHeroActive = true
)

// Valid reports whether p is one of HeroPages.
func (p HeroPage) Valid() bool {
	for _, hp := range HeroPages {
		if p == hp {
			return true
		}
	}
	return false
}

// HeroImage is a banner image shown in rotation on one public page.
type HeroImage struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImagePath   string   `json:"imagePath"`
	IsActive    bool     `json:"isActive"`
	Order       int      `json:"order"`
	Page        HeroPage `json:"page"`
}

// ImageURL returns ImagePath in a form usable as an <img src>. Absolute
// URLs and root-relative paths pass through; bare filenames are rooted.
func (h HeroImage) ImageURL() string {
	return RootRelative(h.ImagePath)
}

// RootRelative prefixes bare filenames with "/".
func RootRelative(p string) string {
	switch {
	case p == "":
		return ""
	case strings.HasPrefix(p, "/"),
		strings.HasPrefix(p, "http://"),
		strings.HasPrefix(p, "https://"),
		strings.HasPrefix(p, "data:"):
		return p
	default:
		return "/" + p
	}
}

// HeroImageInput carries the caller-supplied fields of a new hero image.
// Nil IsActive and Order and an empty Page take the package defaults.
type HeroImageInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImagePath   string   `json:"imagePath"`
	IsActive    *bool    `json:"isActive,omitempty"`
	Order       *int     `json:"order,omitempty"`
	Page        HeroPage `json:"page,omitempty"`
}

// HeroImagePatch is a partial hero image update. Nil fields are left
// untouched.
type HeroImagePatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	ImagePath   *string   `json:"imagePath,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
	Order       *int      `json:"order,omitempty"`
	Page        *HeroPage `json:"page,omitempty"`
}

// Apply shallow-merges the patch onto h.
func (hp HeroImagePatch) Apply(h *HeroImage) {
	setString(&h.Title, hp.Title)
	setString(&h.Description, hp.Description)
	setString(&h.ImagePath, hp.ImagePath)
	if hp.IsActive != nil {
		h.IsActive = *hp.IsActive
	}
	if hp.Order != nil {
		h.Order = *hp.Order
	}
	if hp.Page != nil {
		h.Page = *hp.Page
	}
}
