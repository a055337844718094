package domain

import (
	"time"
)

// AnonymousReviewer is the display name used when a stored review has no
// reviewer name. Older rows written before the name became required may
// carry a NULL reviewer_name.
const AnonymousReviewer = "Anonymous"

// Review represents a product review submitted by a shopper. UserID is nil
// for reviews submitted without an account.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    *string   `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title,omitempty"`
	Comment   string    `json:"comment"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`

	// Populated from the products join when listing reviews.
	ProductName     string `json:"product_name,omitempty"`
	ProductImageURL string `json:"product_image_url,omitempty"`
}

// ReviewSummary contains aggregate review statistics for a product.
type ReviewSummary struct {
	AverageRating float64 `json:"average_rating"`
	TotalCount    int     `json:"total_count"`
}

// ValidRating reports whether the given rating is within the accepted 1-5 range.
func ValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
