// Package client provides a Go client for the storefront HTTP API. It is
// used by the review page controller and the carousel, which treat network
// failures as recoverable: nothing is retried and callers decide how to
// degrade.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/kpnaturals/storefront/internal/domain"
	"github.com/kpnaturals/storefront/pkg/httpclient"
	"github.com/kpnaturals/storefront/pkg/httputil"
)

const serviceName = "storefront-api"

// Config holds storefront API client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client calls the storefront HTTP API. Requests are not retried; a circuit
// breaker sheds load once the API is persistently failing.
type Client struct {
	http    *httpclient.CircuitBreakerClient
	baseURL string
}

// New creates a storefront API client.
func New(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = timeout
	httpCfg.MaxRetries = 0

	inner := httpclient.New(httpCfg)
	cb := httpclient.NewCircuitBreakerClient(inner, httpclient.DefaultCircuitBreakerConfig(serviceName), logger)

	return &Client{
		http:    cb,
		baseURL: cfg.BaseURL,
	}
}

// CreateReviewInput holds the fields for submitting a review.
type CreateReviewInput struct {
	ProductID string  `json:"product_id"`
	UserID    *string `json:"user_id,omitempty"`
	UserName  string  `json:"user_name"`
	Rating    int     `json:"rating"`
	Title     string  `json:"title,omitempty"`
	Comment   string  `json:"comment"`
}

// ListReviews fetches reviews, newest first. productID may be empty to list
// reviews across all products.
func (c *Client) ListReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	u := c.baseURL + "/api/v1/reviews"
	if productID != "" {
		u += "?product_id=" + url.QueryEscape(productID)
	}

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, httpclient.ParseResponseError(resp, serviceName)
	}
	defer func() { _ = resp.Body.Close() }()

	var body struct {
		Reviews []domain.Review `json:"reviews"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode reviews response: %w", err)
	}

	return body.Reviews, nil
}

// CreateReview submits a new review and returns the stored record.
func (c *Client) CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal review: %w", err)
	}

	resp, err := c.http.Post(ctx, c.baseURL+"/api/v1/reviews", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, httpclient.ParseResponseError(resp, serviceName)
	}
	defer func() { _ = resp.Body.Close() }()

	var body struct {
		Review *domain.Review `json:"review"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode review response: %w", err)
	}
	if body.Review == nil {
		return nil, fmt.Errorf("create review: empty response body")
	}

	return body.Review, nil
}

// ListProducts fetches a page of catalog products, newest first, along with
// the total count.
func (c *Client) ListProducts(ctx context.Context, page, perPage int) ([]domain.Product, int, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}

	u := c.baseURL + "/api/v1/products"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, 0, httpclient.ParseResponseError(resp, serviceName)
	}
	defer func() { _ = resp.Body.Close() }()

	var body httputil.PaginatedResponse[domain.Product]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, 0, fmt.Errorf("decode products response: %w", err)
	}

	return body.Data, body.TotalCount, nil
}
