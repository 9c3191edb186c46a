package handlers

import (
	"strings"
	"testing"

	"nishat/internal/models"
)

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name      string
		in        models.ProductInput
		wantError bool
	}{
		{"valid", models.ProductInput{Name: "Basmati", CategoryID: "rice"}, false},
		{"optional fields empty", models.ProductInput{Name: "B", CategoryID: "rice", Description: ""}, false},
		{"whitespace name", models.ProductInput{Name: "   ", CategoryID: "rice"}, true},
		{"name too long", models.ProductInput{Name: strings.Repeat("a", 201), CategoryID: "rice"}, true},
		{"origin too long", models.ProductInput{Name: "a", CategoryID: "rice", Origin: strings.Repeat("o", 201)}, true},
		{"packaging too long", models.ProductInput{Name: "a", CategoryID: "rice", Packaging: strings.Repeat("p", 201)}, true},
		{"image path too long", models.ProductInput{Name: "a", CategoryID: "rice", Image: strings.Repeat("i", 2049)}, true},
		{"multibyte within limit", models.ProductInput{Name: strings.Repeat("ü", 199) + "a", CategoryID: "rice"}, false},
		{"multibyte over limit", models.ProductInput{Name: strings.Repeat("ü", 200) + "a", CategoryID: "rice"}, true},
		{"no ascii letters or digits", models.ProductInput{Name: "üöä", CategoryID: "rice"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateProduct(tt.in)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateProductPatch(t *testing.T) {
	empty := ""
	long := strings.Repeat("d", 2001)
	tests := []struct {
		name      string
		patch     models.ProductPatch
		wantError bool
	}{
		{"empty patch", models.ProductPatch{}, false},
		{"clear description", models.ProductPatch{Description: &empty}, false},
		{"clear name", models.ProductPatch{Name: &empty}, true},
		{"clear category", models.ProductPatch{CategoryID: &empty}, true},
		{"description too long", models.ProductPatch{Description: &long}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateProductPatch(tt.patch)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateHeroPatch(t *testing.T) {
	empty := ""
	long := strings.Repeat("t", 201)
	tests := []struct {
		name      string
		patch     models.HeroImagePatch
		wantError bool
	}{
		{"empty patch", models.HeroImagePatch{}, false},
		{"clear title", models.HeroImagePatch{Title: &empty}, false},
		{"clear description", models.HeroImagePatch{Description: &empty}, false},
		{"clear image path", models.HeroImagePatch{ImagePath: &empty}, true},
		{"title too long", models.HeroImagePatch{Title: &long}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateHeroPatch(tt.patch)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateHero(t *testing.T) {
	tests := []struct {
		name      string
		in        models.HeroImageInput
		wantError bool
	}{
		{"valid", models.HeroImageInput{Title: "T", ImagePath: "/a.jpg"}, false},
		{"bare filename", models.HeroImageInput{Title: "T", ImagePath: "a.jpg"}, false},
		{"missing path", models.HeroImageInput{Title: "T"}, true},
		{"title too long", models.HeroImageInput{Title: strings.Repeat("t", 201), ImagePath: "a.jpg"}, true},
		{"description too long", models.HeroImageInput{Title: "T", ImagePath: "a.jpg", Description: strings.Repeat("d", 2001)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateHero(tt.in)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}
