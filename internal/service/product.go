package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kpnaturals/storefront/internal/domain"
	"github.com/kpnaturals/storefront/internal/repository"
)

// ListProductsInput holds the parameters for listing catalog products.
type ListProductsInput struct {
	Search  string
	Page    int
	PerPage int
}

// ProductService exposes read access to the product catalog.
type ProductService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewProductService creates a new product service. A nil repo means the
// catalog store is not configured.
func NewProductService(repo repository.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		logger: logger,
	}
}

// ListProducts returns catalog products matching the input along with the total count.
func (s *ProductService) ListProducts(ctx context.Context, input ListProductsInput) ([]domain.Product, int, error) {
	if s.repo == nil {
		return nil, 0, errStoreNotConfigured()
	}

	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PerPage <= 0 {
		input.PerPage = 20
	}
	if input.PerPage > 100 {
		input.PerPage = 100
	}

	filter := repository.ProductFilter{
		Page:    input.Page,
		PerPage: input.PerPage,
	}
	if input.Search != "" {
		filter.Search = &input.Search
	}

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return products, total, nil
}

// GetProduct retrieves a product by UUID or slug. Anything that parses as a
// UUID is treated as an identifier, otherwise it is looked up as a slug.
func (s *ProductService) GetProduct(ctx context.Context, idOrSlug string) (*domain.Product, error) {
	if s.repo == nil {
		return nil, errStoreNotConfigured()
	}

	if _, err := uuid.Parse(idOrSlug); err == nil {
		return s.repo.GetByID(ctx, idOrSlug)
	}
	return s.repo.GetBySlug(ctx, idOrSlug)
}

// ListNewestProducts returns the most recently added products, up to limit.
// It backs the storefront carousel, which shows the latest arrivals.
func (s *ProductService) ListNewestProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	if s.repo == nil {
		return nil, errStoreNotConfigured()
	}

	products, err := s.repo.ListNewest(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list newest products: %w", err)
	}

	return products, nil
}
