package domain

import (
	"time"
)

// Product represents an item in the storefront catalog.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	ImageURL    string    `json:"image_url"`
	ImageURLs   []string  `json:"image_urls,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PrimaryImage returns the first entry of ImageURLs when present, otherwise
// the single ImageURL. An empty string means the product has no image.
func (p *Product) PrimaryImage() string {
	if len(p.ImageURLs) > 0 {
		return p.ImageURLs[0]
	}
	return p.ImageURL
}
