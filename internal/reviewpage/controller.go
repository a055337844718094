// Package reviewpage holds the state machine behind the storefront review
// page: initial load of reviews and products, a toggleable review form, and
// guarded submission so a slow backend cannot double-submit or corrupt the
// view after the page is closed.
package reviewpage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kpnaturals/storefront/internal/client"
	"github.com/kpnaturals/storefront/internal/domain"
)

// API is the slice of the storefront client the controller needs.
type API interface {
	ListReviews(ctx context.Context, productID string) ([]domain.Review, error)
	ListProducts(ctx context.Context, page, perPage int) ([]domain.Product, int, error)
	CreateReview(ctx context.Context, input client.CreateReviewInput) (*domain.Review, error)
}

// State is the top-level review page state.
type State int

const (
	// StateLoading is the initial fetch of reviews and products.
	StateLoading State = iota
	// StateReady means the page is interactive.
	StateReady
	// StateSubmitting means a review submission is in flight.
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Draft is the review form contents.
type Draft struct {
	Name    string
	Rating  int
	Comment string
}

// emptyDraft is the form's reset value; rating defaults to the top score.
func emptyDraft() Draft {
	return Draft{Rating: 5}
}

// Snapshot is an immutable view of the page for rendering.
type Snapshot struct {
	State            State
	Reviews          []domain.Review
	DefaultProductID string
	ShowForm         bool
	Draft            Draft
	LastError        string
}

// Controller owns the review page state. All methods are safe for
// concurrent use; responses arriving after Close are discarded.
type Controller struct {
	mu sync.Mutex

	api    API
	logger *slog.Logger

	state            State
	reviews          []domain.Review
	defaultProductID string
	showForm         bool
	draft            Draft
	lastError        string
	closed           bool
}

// NewController creates a review page controller in the loading state.
func NewController(api API, logger *slog.Logger) *Controller {
	return &Controller{
		api:    api,
		logger: logger,
		state:  StateLoading,
		draft:  emptyDraft(),
	}
}

// Load fetches reviews and products. Fetch failures leave the page usable
// with whatever data arrived; the error is recorded for display.
func (c *Controller) Load(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.state = StateLoading
	c.lastError = ""
	c.mu.Unlock()

	reviews, revErr := c.api.ListReviews(ctx, "")

	// The first product acts as the default target for general reviews.
	var defaultProductID string
	products, _, prodErr := c.api.ListProducts(ctx, 1, 1)
	if prodErr == nil && len(products) > 0 {
		defaultProductID = products[0].ID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	if revErr != nil {
		c.logger.WarnContext(ctx, "failed to load reviews",
			slog.String("error", revErr.Error()),
		)
		c.lastError = "could not load reviews"
	} else {
		c.reviews = reviews
	}

	if prodErr != nil {
		c.logger.WarnContext(ctx, "failed to load products",
			slog.String("error", prodErr.Error()),
		)
	}
	if defaultProductID != "" {
		c.defaultProductID = defaultProductID
	}

	c.state = StateReady
}

// ToggleForm shows or hides the review form.
func (c *Controller) ToggleForm() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state == StateSubmitting {
		return
	}
	c.showForm = !c.showForm
}

// SetDraft updates the form contents.
func (c *Controller) SetDraft(d Draft) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state == StateSubmitting {
		return
	}
	c.draft = d
}

// Discard resets the form and hides it.
func (c *Controller) Discard() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.state == StateSubmitting {
		return
	}
	c.draft = emptyDraft()
	c.showForm = false
}

// Submit sends the drafted review. It is a no-op when the draft is
// incomplete, no default product is known, or a submission is already in
// flight. On success the form resets and the page reloads; on failure the
// draft is kept so the shopper can retry.
func (c *Controller) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.state != StateReady {
		c.mu.Unlock()
		return
	}
	if c.draft.Name == "" || c.draft.Comment == "" || c.defaultProductID == "" {
		c.mu.Unlock()
		return
	}
	c.state = StateSubmitting
	c.lastError = ""
	input := client.CreateReviewInput{
		ProductID: c.defaultProductID,
		UserName:  c.draft.Name,
		Rating:    c.draft.Rating,
		Comment:   c.draft.Comment,
	}
	c.mu.Unlock()

	_, err := c.api.CreateReview(ctx, input)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if err != nil {
		c.logger.WarnContext(ctx, "failed to submit review",
			slog.String("error", err.Error()),
		)
		c.lastError = "could not submit review"
		c.state = StateReady
		c.mu.Unlock()
		return
	}

	c.draft = emptyDraft()
	c.showForm = false
	c.state = StateReady
	c.mu.Unlock()

	// Refresh so the new review appears at the top of the list.
	c.Load(ctx)
}

// Close marks the page as gone; any in-flight responses are dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Snapshot returns a copy of the current page state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	reviews := make([]domain.Review, len(c.reviews))
	copy(reviews, c.reviews)

	return Snapshot{
		State:            c.state,
		Reviews:          reviews,
		DefaultProductID: c.defaultProductID,
		ShowForm:         c.showForm,
		Draft:            c.draft,
		LastError:        c.lastError,
	}
}
