package handlers

import (
	"strings"
	"unicode/utf8"

	"nishat/internal/models"
	"nishat/internal/slug"
)

// Validation limits for catalog, hero and contact fields.
const (
	maxNameLen        = 200
	maxDescriptionLen = 2_000
	maxShortFieldLen  = 200
	maxPathLen        = 2_048
	maxEmailLen       = 254
	maxMessageLen     = 5_000
)

// validateCategoryName checks the name of a new category.
func validateCategoryName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Category name is required"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Category name is too long (max 200 characters)"
	}
	return ""
}

// validateProduct checks the fields of a new product and returns the first
// error found.
func validateProduct(in models.ProductInput) string {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.CategoryID) == "" {
		return "Name and category are required"
	}
	if slug.Generate(in.Name) == "" {
		return "Product name must contain letters or numbers"
	}
	return validateProductFields(&in.Name, &in.Description, &in.Image, &in.Origin, &in.Packaging)
}

// validateProductPatch checks only the fields present in the patch.
func validateProductPatch(p models.ProductPatch) string {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return "Name cannot be empty"
	}
	if p.CategoryID != nil && strings.TrimSpace(*p.CategoryID) == "" {
		return "Category cannot be empty"
	}
	return validateProductFields(p.Name, p.Description, p.Image, p.Origin, p.Packaging)
}

func validateProductFields(name, description, image, origin, packaging *string) string {
	switch {
	case tooLong(name, maxNameLen):
		return "Name is too long (max 200 characters)"
	case tooLong(description, maxDescriptionLen):
		return "Description is too long (max 2,000 characters)"
	case tooLong(image, maxPathLen):
		return "Image path is too long"
	case tooLong(origin, maxShortFieldLen):
		return "Origin is too long (max 200 characters)"
	case tooLong(packaging, maxShortFieldLen):
		return "Packaging is too long (max 200 characters)"
	}
	return ""
}

// validateHero checks the fields of a new hero image.
func validateHero(in models.HeroImageInput) string {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.ImagePath) == "" {
		return "Title and image path are required"
	}
	return validateHeroFields(&in.Title, &in.Description, &in.ImagePath)
}

// validateHeroPatch checks only the fields present in the patch. A title
// may be cleared; the image path may not.
func validateHeroPatch(p models.HeroImagePatch) string {
	if p.ImagePath != nil && strings.TrimSpace(*p.ImagePath) == "" {
		return "Image path cannot be empty"
	}
	return validateHeroFields(p.Title, p.Description, p.ImagePath)
}

func validateHeroFields(title, description, imagePath *string) string {
	switch {
	case tooLong(title, maxNameLen):
		return "Title is too long (max 200 characters)"
	case tooLong(description, maxDescriptionLen):
		return "Description is too long (max 2,000 characters)"
	case tooLong(imagePath, maxPathLen):
		return "Image path is too long"
	}
	return ""
}

// validateContact checks a contact form submission.
func validateContact(f contactForm) string {
	for _, v := range []string{f.FirstName, f.LastName, f.Email, f.Company, f.Message} {
		if strings.TrimSpace(v) == "" {
			return "All fields are required"
		}
	}
	switch {
	case tooLong(&f.FirstName, maxShortFieldLen),
		tooLong(&f.LastName, maxShortFieldLen),
		tooLong(&f.Company, maxShortFieldLen):
		return "Fields are too long (max 200 characters)"
	case tooLong(&f.Email, maxEmailLen) || !strings.Contains(f.Email, "@"):
		return "A valid email address is required"
	case tooLong(&f.Message, maxMessageLen):
		return "Message is too long (max 5,000 characters)"
	}
	return ""
}

func tooLong(s *string, limit int) bool {
	return s != nil && utf8.RuneCountInString(*s) > limit
}
