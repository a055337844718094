package http

import (
	"log/slog"
	"net/http"

	"github.com/kpnaturals/storefront/internal/carousel"
	"github.com/kpnaturals/storefront/internal/service"
	"github.com/kpnaturals/storefront/pkg/httputil"
)

// CarouselHandler serves the home page carousel slide deck.
type CarouselHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewCarouselHandler creates a new carousel HTTP handler.
func NewCarouselHandler(svc *service.ProductService, logger *slog.Logger) *CarouselHandler {
	return &CarouselHandler{
		service: svc,
		logger:  logger,
	}
}

// GetSlides handles GET /api/v1/carousel
// @Summary Get carousel slides
// @Description Returns the slide deck built from the newest product imagery, padded with fallbacks
// @Tags carousel
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/carousel [get]
func (h *CarouselHandler) GetSlides(w http.ResponseWriter, r *http.Request) {
	slides := carousel.FallbackSlides()

	products, err := h.service.ListNewestProducts(r.Context(), carousel.DefaultFetchLimit)
	if err != nil {
		// The carousel degrades to fallbacks rather than erroring.
		h.logger.WarnContext(r.Context(), "carousel falling back to built-in slides",
			slog.String("error", err.Error()),
		)
	} else {
		slides = carousel.BuildSlides(products, slides)
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"slides": slides,
	})
}
