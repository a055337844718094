package carousel

import (
	"context"
	"log/slog"
	"time"

	"github.com/kpnaturals/storefront/internal/domain"
)

// ProductLister is the slice of the storefront API client the carousel needs.
type ProductLister interface {
	ListProducts(ctx context.Context, page, perPage int) ([]domain.Product, int, error)
}

// Carousel drives the home page image rotation. It starts on the built-in
// fallback slides and swaps in catalog imagery once a refresh succeeds. A
// failed refresh keeps whatever deck is currently showing.
type Carousel struct {
	rotator *Rotator
	api     ProductLister
	logger  *slog.Logger
}

// New creates a carousel showing the fallback slides. api may be nil when no
// catalog backend is configured; the fallbacks then rotate indefinitely.
func New(api ProductLister, interval time.Duration, logger *slog.Logger) *Carousel {
	return &Carousel{
		rotator: NewRotator(FallbackSlides(), interval),
		api:     api,
		logger:  logger,
	}
}

// Refresh fetches the newest products and rebuilds the slide deck from their
// imagery. Errors leave the current deck untouched, so the carousel never
// goes blank because of a backend hiccup.
func (c *Carousel) Refresh(ctx context.Context) {
	if c.api == nil {
		return
	}

	products, _, err := c.api.ListProducts(ctx, 1, DefaultFetchLimit)
	if err != nil {
		c.logger.WarnContext(ctx, "carousel refresh failed, keeping current slides",
			slog.String("error", err.Error()),
		)
		return
	}

	slides := BuildSlides(products, FallbackSlides())
	c.rotator.Replace(slides)
}

// Start begins automatic rotation.
func (c *Carousel) Start() { c.rotator.Start() }

// Stop halts automatic rotation.
func (c *Carousel) Stop() { c.rotator.Stop() }

// Next advances the carousel manually.
func (c *Carousel) Next() { c.rotator.Next() }

// Previous moves the carousel back manually.
func (c *Carousel) Previous() { c.rotator.Previous() }

// Select jumps to a specific slide.
func (c *Carousel) Select(i int) { c.rotator.Select(i) }

// Current returns the slide being shown.
func (c *Carousel) Current() (Slide, bool) { return c.rotator.Current() }

// Slides returns a copy of the current deck.
func (c *Carousel) Slides() []Slide { return c.rotator.Slides() }
