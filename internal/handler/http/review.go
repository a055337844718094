package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kpnaturals/storefront/internal/service"
	"github.com/kpnaturals/storefront/pkg/httputil"
	"github.com/kpnaturals/storefront/pkg/validator"
)

// ReviewHandler handles HTTP requests for review endpoints.
type ReviewHandler struct {
	service *service.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review HTTP handler.
func NewReviewHandler(svc *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// CreateReviewRequest is the JSON request body for creating a review.
// Field presence and the rating range are validated by the service so the
// first failing field is reported; the tags only bound lengths.
type CreateReviewRequest struct {
	ProductID string  `json:"product_id"`
	UserID    *string `json:"user_id"`
	UserName  string  `json:"user_name" validate:"max=120"`
	Rating    int     `json:"rating"`
	Title     string  `json:"title" validate:"max=255"`
	Comment   string  `json:"comment"`
}

// --- Handlers ---

// ListReviews handles GET /api/v1/reviews
// @Summary List reviews
// @Description Returns reviews newest first, optionally filtered by product
// @Tags reviews
// @Produce json
// @Param product_id query string false "Product UUID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/reviews [get]
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("product_id")

	reviews, err := h.service.ListReviews(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"reviews": reviews,
	})
}

// CreateReview handles POST /api/v1/reviews
// @Summary Create a review
// @Description Submits a product review. user_id is optional and absent for anonymous reviewers.
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body CreateReviewRequest true "Review to submit"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	// Limit request body to 1MB to prevent DoS via large payloads.
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	input := &service.CreateReviewInput{
		ProductID: req.ProductID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	}

	review, err := h.service.CreateReview(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]any{
		"review": review,
	})
}

// GetSummary handles GET /api/v1/products/{productId}/reviews/summary
// @Summary Get review summary
// @Description Returns the average rating and review count for a product
// @Tags reviews
// @Produce json
// @Param productId path string true "Product UUID"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/products/{productId}/reviews/summary [get]
func (h *ReviewHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	summary, err := h.service.GetSummary(r.Context(), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: summary})
}
