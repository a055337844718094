package postgres

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/kpnaturals/storefront/internal/domain"
	"github.com/kpnaturals/storefront/internal/repository"
	"github.com/kpnaturals/storefront/pkg/database"
	apperrors "github.com/kpnaturals/storefront/pkg/errors"
)

// ReviewRepository implements review persistence operations using PostgreSQL.
type ReviewRepository struct {
	pool database.DBTX
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool database.DBTX) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

// Create inserts a new review into the database.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (id, product_id, user_id, reviewer_name, rating, title, comment, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.ProductID,
		review.UserID,
		review.UserName,
		review.Rating,
		review.Title,
		review.Comment,
		review.Verified,
		review.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return apperrors.InvalidInput("product_id does not reference an existing product")
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

// List returns reviews matching the filter, newest first. Product name and
// image are joined in so review listings can render catalog context without
// a second round trip.
func (r *ReviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]domain.Review, error) {
	query := `
		SELECT r.id, r.product_id, r.user_id, COALESCE(NULLIF(r.reviewer_name, ''), '` + domain.AnonymousReviewer + `'),
		       r.rating, r.title, r.comment, r.verified, r.created_at,
		       COALESCE(p.name, ''), COALESCE(p.image_url, '')
		FROM reviews r
		LEFT JOIN products p ON p.id = r.product_id`

	var args []any
	if filter.ProductID != nil {
		query += `
		WHERE r.product_id = $1`
		args = append(args, *filter.ProductID)
	}
	query += `
		ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review

	for rows.Next() {
		var rv domain.Review

		if err := rows.Scan(
			&rv.ID,
			&rv.ProductID,
			&rv.UserID,
			&rv.UserName,
			&rv.Rating,
			&rv.Title,
			&rv.Comment,
			&rv.Verified,
			&rv.CreatedAt,
			&rv.ProductName,
			&rv.ProductImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}

		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}

	return reviews, nil
}

// GetSummary returns the average rating and total count of reviews for a product.
func (r *ReviewRepository) GetSummary(ctx context.Context, productID string) (*domain.ReviewSummary, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE product_id = $1`

	var summary domain.ReviewSummary

	err := r.pool.QueryRow(ctx, query, productID).Scan(
		&summary.AverageRating,
		&summary.TotalCount,
	)
	if err != nil {
		return nil, fmt.Errorf("get review summary: %w", err)
	}

	// Round average rating to one decimal place.
	summary.AverageRating = math.Round(summary.AverageRating*10) / 10

	return &summary, nil
}

// isForeignKeyViolation checks whether the error is a PostgreSQL foreign key
// constraint violation (SQLSTATE 23503).
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23503")
}
