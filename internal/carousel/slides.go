package carousel

import (
	"github.com/kpnaturals/storefront/internal/domain"
)

// MinSlides is the minimum number of slides the carousel pads up to when
// catalog images are available.
const MinSlides = 6

// DefaultFetchLimit is how many of the newest products are considered when
// building slides from the catalog.
const DefaultFetchLimit = 12

// Slide is a single carousel entry.
type Slide struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// defaultProductAlt is used when a product has no name to caption its image.
const defaultProductAlt = "Product image"

// FallbackSlides returns the built-in slides shown when the catalog has no
// uploaded imagery.
func FallbackSlides() []Slide {
	return []Slide{
		{Src: "/product-carousel-1.webp", Alt: "KP Naturals Hair Oil with Hibiscus and Coconuts"},
		{Src: "/product-carousel-2.png", Alt: "KP Pure Coconut Rosemary Hair Oil Logo"},
		{Src: "/coconut-farm-harvest.webp", Alt: "Fresh Coconut Harvesting at KP Farm"},
		{Src: "/coconut-shells-processed.webp", Alt: "Processed Coconut Shells After Oil Extraction"},
		{Src: "/fresh-coconut-halves.webp", Alt: "Fresh Coconut Halves Ready for Oil Processing"},
		{Src: "/product-carousel-3.png", Alt: "KP Naturals Hair Oil with Natural Ingredients"},
	}
}

// BuildSlides flattens product imagery into carousel slides. Products listing
// multiple images contribute one slide per image; otherwise the single image
// is used. Duplicate sources are dropped (first occurrence wins), and the
// result is padded with fallbacks until it reaches MinSlides. When the
// products carry no imagery at all, the fallbacks are returned unchanged.
func BuildSlides(products []domain.Product, fallbacks []Slide) []Slide {
	var uploaded []Slide

	for _, p := range products {
		alt := p.Name
		if alt == "" {
			alt = defaultProductAlt
		}

		if len(p.ImageURLs) > 0 {
			for _, u := range p.ImageURLs {
				if u != "" {
					uploaded = append(uploaded, Slide{Src: u, Alt: alt})
				}
			}
			continue
		}
		if p.ImageURL != "" {
			uploaded = append(uploaded, Slide{Src: p.ImageURL, Alt: alt})
		}
	}

	if len(uploaded) == 0 {
		return fallbacks
	}

	seen := make(map[string]bool, len(uploaded))
	combined := make([]Slide, 0, len(uploaded))
	for _, s := range uploaded {
		if !seen[s.Src] {
			combined = append(combined, s)
			seen[s.Src] = true
		}
	}

	for _, f := range fallbacks {
		if len(combined) >= MinSlides {
			break
		}
		if !seen[f.Src] {
			combined = append(combined, f)
			seen[f.Src] = true
		}
	}

	return combined
}
