package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kpnaturals/storefront/internal/domain"
	"github.com/kpnaturals/storefront/internal/repository"
	apperrors "github.com/kpnaturals/storefront/pkg/errors"
)

// ReviewEventPublisher publishes review lifecycle events. Publish failures
// must not fail the originating request.
type ReviewEventPublisher interface {
	PublishReviewCreated(ctx context.Context, review *domain.Review) error
}

// CreateReviewInput holds the parameters for creating a review.
type CreateReviewInput struct {
	ProductID string
	UserID    *string
	UserName  string
	Rating    int
	Title     string
	Comment   string
}

// ReviewService implements the business logic for review operations.
type ReviewService struct {
	repo   repository.ReviewRepository
	events ReviewEventPublisher
	logger *slog.Logger
}

// NewReviewService creates a new review service. A nil repo means the review
// store is not configured; operations will fail with STORE_NOT_CONFIGURED.
// events may be nil when event publishing is disabled.
func NewReviewService(repo repository.ReviewRepository, events ReviewEventPublisher, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

// errStoreNotConfigured is returned when the backing store was never wired,
// e.g. the service was started without database configuration.
func errStoreNotConfigured() *apperrors.AppError {
	return apperrors.StoreNotConfigured("review store is not configured")
}

// CreateReview validates the input and persists a new review. Validation is
// checked field by field so the first failing field is the one reported.
func (s *ReviewService) CreateReview(ctx context.Context, input *CreateReviewInput) (*domain.Review, error) {
	if input.ProductID == "" {
		return nil, apperrors.InvalidInput("product_id is required")
	}
	if input.UserName == "" {
		return nil, apperrors.InvalidInput("user_name is required")
	}
	if input.Rating == 0 {
		return nil, apperrors.InvalidInput("rating is required")
	}
	if input.Comment == "" {
		return nil, apperrors.InvalidInput("comment is required")
	}
	if !domain.ValidRating(input.Rating) {
		return nil, apperrors.InvalidInput("rating must be between 1 and 5")
	}

	if s.repo == nil {
		return nil, errStoreNotConfigured()
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		ProductID: input.ProductID,
		UserID:    input.UserID,
		UserName:  input.UserName,
		Rating:    input.Rating,
		Title:     input.Title,
		Comment:   input.Comment,
		Verified:  false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.InfoContext(ctx, "review created",
		slog.String("review_id", review.ID),
		slog.String("product_id", review.ProductID),
		slog.Int("rating", review.Rating),
	)

	// Event publishing is best effort; the review is already persisted.
	if s.events != nil {
		if err := s.events.PublishReviewCreated(ctx, review); err != nil {
			s.logger.ErrorContext(ctx, "failed to publish review.created event",
				slog.String("review_id", review.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return review, nil
}

// ListReviews returns reviews newest first. When productID is non-empty the
// listing is restricted to that product.
func (s *ReviewService) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	if s.repo == nil {
		return nil, errStoreNotConfigured()
	}

	filter := repository.ReviewFilter{}
	if productID != "" {
		filter.ProductID = &productID
	}

	reviews, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return reviews, nil
}

// GetSummary returns the aggregate rating summary for a product.
func (s *ReviewService) GetSummary(ctx context.Context, productID string) (*domain.ReviewSummary, error) {
	if productID == "" {
		return nil, apperrors.InvalidInput("product_id is required")
	}
	if s.repo == nil {
		return nil, errStoreNotConfigured()
	}

	summary, err := s.repo.GetSummary(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get review summary: %w", err)
	}

	return summary, nil
}
