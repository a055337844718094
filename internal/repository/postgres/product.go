package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kpnaturals/storefront/internal/domain"
	"github.com/kpnaturals/storefront/internal/repository"
	"github.com/kpnaturals/storefront/pkg/database"
	apperrors "github.com/kpnaturals/storefront/pkg/errors"
)

const productSelectColumns = `id, name, slug, description, price_cents, currency, image_url, image_urls, created_at, updated_at`

// ProductRepository implements read access to the product catalog using PostgreSQL.
type ProductRepository struct {
	pool database.DBTX
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool database.DBTX) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// GetByID retrieves a product by its unique identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productSelectColumns + ` FROM products WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetBySlug retrieves a product by its URL-friendly slug.
func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	query := `SELECT ` + productSelectColumns + ` FROM products WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *ProductRepository) getOne(ctx context.Context, query string, arg any) (*domain.Product, error) {
	var p domain.Product

	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&p.ID,
		&p.Name,
		&p.Slug,
		&p.Description,
		&p.PriceCents,
		&p.Currency,
		&p.ImageURL,
		&p.ImageURLs,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("product", fmt.Sprintf("%v", arg))
		}
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &p, nil
}

// List returns products matching the given filter along with the total count.
func (r *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	limit := filter.PerPage
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := `
		SELECT ` + productSelectColumns + `,
		       count(*) OVER() AS total_count
		FROM products`

	var args []any
	if filter.Search != nil && *filter.Search != "" {
		query += `
		WHERE name ILIKE $1`
		args = append(args, "%"+*filter.Search+"%")
	}

	query += fmt.Sprintf(`
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var (
		products   []domain.Product
		totalCount int
	)

	for rows.Next() {
		var p domain.Product

		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Slug,
			&p.Description,
			&p.PriceCents,
			&p.Currency,
			&p.ImageURL,
			&p.ImageURLs,
			&p.CreatedAt,
			&p.UpdatedAt,
			&totalCount,
		); err != nil {
			return nil, 0, fmt.Errorf("scan product row: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, totalCount, nil
}

// ListNewest returns the most recently created products, up to limit.
func (r *ProductRepository) ListNewest(ctx context.Context, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		limit = 12
	}

	query := `
		SELECT ` + productSelectColumns + `
		FROM products
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list newest products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product

	for rows.Next() {
		var p domain.Product

		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Slug,
			&p.Description,
			&p.PriceCents,
			&p.Currency,
			&p.ImageURL,
			&p.ImageURLs,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	if products == nil {
		products = []domain.Product{}
	}

	return products, nil
}
