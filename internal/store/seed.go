package store

import "nishat/internal/models"

// defaultCatalog is written to a fresh products document.
func defaultCatalog() []models.Category {
	return []models.Category{
		{
			ID:   "rice",
			Name: "Al Razak Rice",
			Products: []models.Product{
				{
					ID:          "basmati",
					CategoryID:  "rice",
					Name:        "Al Razak Basmati Rice",
					Description: "Premium long-grain aromatic basmati rice with a distinct flavor and aroma.",
					Image:       "/basmati.png",
					Origin:      "Pakistan",
					Packaging:   "25kg, 50kg bags",
				},
				{
					ID:          "sella",
					CategoryID:  "rice",
					Name:        "Al Razak Sella Rice",
					Description: "Parboiled rice that maintains its nutritional value and has a better shelf life.",
					Image:       "/sellarice.png",
					Origin:      "Pakistan",
					Packaging:   "25kg, 50kg bags",
				},
				{
					ID:          "steam",
					CategoryID:  "rice",
					Name:        "Al Razak Steam Rice",
					Description: "Perfectly steamed rice with excellent texture and moisture retention.",
					Image:       "/steamrice.png",
					Origin:      "Pakistan",
					Packaging:   "25kg, 50kg bags",
				},
				{
					ID:          "white",
					CategoryID:  "rice",
					Name:        "Al Razak White Rice",
					Description: "Clean, polished white rice with versatile cooking applications.",
					Image:       "/whiterice.png",
					Origin:      "Pakistan",
					Packaging:   "25kg, 50kg, 100kg bags",
				},
			},
		},
		{
			ID:   "salt",
			Name: "Premium Salt",
			Products: []models.Product{
				{
					ID:          "pink-salt",
					CategoryID:  "salt",
					Name:        "Al Razak Pink Salt",
					Description: "Premium mineral-rich pink salt from the Himalayan mountains with trace minerals and a distinctive color.",
					Image:       "https://images.unsplash.com/photo-1660650737271-7c292a646922?q=80&w=2070&auto=format&fit=crop",
					Origin:      "Pakistan",
					Packaging:   "1kg, 5kg, 25kg bags",
				},
			},
		},
		{
			ID:   "gold",
			Name: "Gold & Jewelry",
			Products: []models.Product{
				{
					ID:          "gold-jewelry",
					CategoryID:  "gold",
					Name:        "Gold Jewelry Wholesale",
					Description: "Fine gold jewelry pieces and precious stones for wholesale buyers.",
					Image:       "https://images.unsplash.com/photo-1573408301851-47cedcca5b36?q=80&w=2069&auto=format&fit=crop",
					Origin:      "Various",
					Packaging:   "Custom packaging available",
				},
				{
					ID:          "gold-ornaments",
					CategoryID:  "gold",
					Name:        "Gold Ornaments",
					Description: "Exquisite gold ornaments crafted with precision and attention to detail.",
					Image:       "https://images.unsplash.com/photo-1531995811006-35cb42e1a022?q=80&w=2070&auto=format&fit=crop",
					Origin:      "Various",
					Packaging:   "Custom packaging available",
				},
				{
					ID:          "precious-stones",
					CategoryID:  "gold",
					Name:        "Precious Stones",
					Description: "High-quality precious stones and gems for jewelry manufacturing.",
					Image:       "https://images.unsplash.com/photo-1511797663913-0fa4736d0d9f?q=80&w=2069&auto=format&fit=crop",
					Origin:      "Various",
					Packaging:   "Secure packaging with certification",
				},
			},
		},
	}
}

// defaultHeroImages is written to a fresh hero-images document.
func defaultHeroImages() []models.HeroImage {
	return []models.HeroImage{
		{
			ID:          "main-hero",
			Title:       "Nishat Trading",
			Description: "Quality products from Pakistan to the world",
			ImagePath:   "/herosection.png",
			IsActive:    true,
			Order:       1,
			Page:        models.HeroPageHome,
		},
	}
}
