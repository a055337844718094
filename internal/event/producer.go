package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kpnaturals/storefront/internal/domain"
	pkgkafka "github.com/kpnaturals/storefront/pkg/kafka"
)

// Kafka topic for review domain events.
var TopicReviewCreated = pkgkafka.Topic("review", "created")

// Aggregate type constant.
const AggregateTypeReview = "review"

// Source identifier for events originating from the storefront API.
const SourceStorefront = "storefront-api"

// ReviewCreatedData is the payload for a review.created event.
type ReviewCreatedData struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	UserID    *string `json:"user_id,omitempty"`
	UserName  string  `json:"user_name"`
	Rating    int     `json:"rating"`
	Title     string  `json:"title,omitempty"`
	Comment   string  `json:"comment"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the storefront.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishReviewCreated publishes a review.created event.
func (p *Producer) PublishReviewCreated(ctx context.Context, review *domain.Review) error {
	data := ReviewCreatedData{
		ID:        review.ID,
		ProductID: review.ProductID,
		UserID:    review.UserID,
		UserName:  review.UserName,
		Rating:    review.Rating,
		Title:     review.Title,
		Comment:   review.Comment,
	}

	event, err := pkgkafka.NewEvent(TopicReviewCreated, review.ID, AggregateTypeReview, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create review.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicReviewCreated, event); err != nil {
		return fmt.Errorf("publish review.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published review.created event",
		slog.String("review_id", review.ID),
		slog.String("product_id", review.ProductID),
	)

	return nil
}
