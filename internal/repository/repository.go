package repository

import (
	"context"

	"github.com/kpnaturals/storefront/internal/domain"
)

// ReviewFilter defines filter criteria for listing reviews.
type ReviewFilter struct {
	// ProductID restricts the listing to a single product when non-nil.
	ProductID *string
}

// ReviewRepository defines the interface for review persistence operations.
type ReviewRepository interface {
	// Create inserts a new review into the store.
	Create(ctx context.Context, review *domain.Review) error

	// List returns reviews matching the filter, newest first, with catalog
	// fields (product name and image) joined in.
	List(ctx context.Context, filter ReviewFilter) ([]domain.Review, error)

	// GetSummary returns the average rating and total review count for a product.
	GetSummary(ctx context.Context, productID string) (*domain.ReviewSummary, error)
}

// ProductFilter defines filter criteria for listing products.
type ProductFilter struct {
	Search  *string
	Page    int
	PerPage int
}

// ProductRepository defines the read surface over the product catalog.
type ProductRepository interface {
	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// GetBySlug retrieves a product by its URL-friendly slug.
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)

	// List returns products matching the given filter along with the total count.
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, int, error)

	// ListNewest returns the most recently created products, up to limit.
	ListNewest(ctx context.Context, limit int) ([]domain.Product, error)
}
