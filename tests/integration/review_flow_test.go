package integration

import (
	"testing"
)

// TestCreateReview verifies that a review can be submitted for an existing
// product and comes back with server-assigned fields.
func TestCreateReview(t *testing.T) {
	skipIfNotRunning(t, storefrontPort)

	productID := firstProductID(t, storefrontPort)
	reviewer := uniqueReviewer("integration")

	body := map[string]interface{}{
		"product_id": productID,
		"user_name":  reviewer,
		"rating":     5,
		"comment":    "Submitted by the integration suite; works as expected.",
	}

	status, data := httpPost(t, baseURL(storefrontPort)+"/api/v1/reviews", body)
	requireStatus(t, status, 201)

	reviewID := extractString(t, data, "review.id")
	if reviewID == "" {
		t.Fatal("expected non-empty review.id in create response")
	}
	if got := extractString(t, data, "review.user_name"); got != reviewer {
		t.Fatalf("expected user_name %q, got %q", reviewer, got)
	}
	if got := extractString(t, data, "review.product_id"); got != productID {
		t.Fatalf("expected product_id %q, got %q", productID, got)
	}

	t.Logf("created review id=%s", reviewID)
}

// TestCreateReviewValidation verifies that an incomplete submission is
// rejected with the error envelope.
func TestCreateReviewValidation(t *testing.T) {
	skipIfNotRunning(t, storefrontPort)

	body := map[string]interface{}{
		"product_id": "",
		"user_name":  "",
		"rating":     0,
		"comment":    "",
	}

	status, data := httpPost(t, baseURL(storefrontPort)+"/api/v1/reviews", body)
	requireStatus(t, status, 400)

	code := extractString(t, data, "error.code")
	if code != "INVALID_INPUT" {
		t.Fatalf("expected error code INVALID_INPUT, got %q", code)
	}
}

// TestCreateReviewUnknownProduct verifies the foreign key check surfaces as
// a 400 rather than a raw database error.
func TestCreateReviewUnknownProduct(t *testing.T) {
	skipIfNotRunning(t, storefrontPort)

	body := map[string]interface{}{
		"product_id": "00000000-0000-4000-8000-000000000000",
		"user_name":  uniqueReviewer("ghost"),
		"rating":     4,
		"comment":    "This product does not exist.",
	}

	status, data := httpPost(t, baseURL(storefrontPort)+"/api/v1/reviews", body)
	requireStatus(t, status, 400)

	code := extractString(t, data, "error.code")
	if code != "INVALID_INPUT" {
		t.Fatalf("expected error code INVALID_INPUT, got %q", code)
	}
}

// TestListReviews verifies the review listing and per-product filtering.
func TestListReviews(t *testing.T) {
	skipIfNotRunning(t, storefrontPort)

	productID := firstProductID(t, storefrontPort)
	reviewer := uniqueReviewer("list-flow")

	createBody := map[string]interface{}{
		"product_id": productID,
		"user_name":  reviewer,
		"rating":     4,
		"comment":    "Listing flow review.",
	}
	createStatus, _ := httpPost(t, baseURL(storefrontPort)+"/api/v1/reviews", createBody)
	requireStatus(t, createStatus, 201)

	// Unfiltered listing must contain the new review, newest first.
	status, data := httpGet(t, baseURL(storefrontPort)+"/api/v1/reviews")
	requireStatus(t, status, 200)

	reviews := extractList(t, data, "reviews")
	if len(reviews) == 0 {
		t.Fatal("expected at least one review in listing")
	}
	found := false
	for _, raw := range reviews {
		r, ok := raw.(map[string]interface{})
		if ok && r["user_name"] == reviewer {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("review by %q not found in unfiltered listing", reviewer)
	}

	// Filtered listing must only return reviews for the product.
	status, data = httpGet(t, baseURL(storefrontPort)+"/api/v1/reviews?product_id="+productID)
	requireStatus(t, status, 200)

	for _, raw := range extractList(t, data, "reviews") {
		r, ok := raw.(map[string]interface{})
		if !ok {
			t.Fatalf("expected review object, got %T", raw)
		}
		if r["product_id"] != productID {
			t.Fatalf("filtered listing returned review for product %v, want %s", r["product_id"], productID)
		}
	}
}

// TestReviewSummary verifies the aggregate endpoint after a submission.
func TestReviewSummary(t *testing.T) {
	skipIfNotRunning(t, storefrontPort)

	productID := firstProductID(t, storefrontPort)

	createBody := map[string]interface{}{
		"product_id": productID,
		"user_name":  uniqueReviewer("summary"),
		"rating":     5,
		"comment":    "Summary flow review.",
	}
	createStatus, _ := httpPost(t, baseURL(storefrontPort)+"/api/v1/reviews", createBody)
	requireStatus(t, createStatus, 201)

	status, data := httpGet(t, baseURL(storefrontPort)+"/api/v1/products/"+productID+"/reviews/summary")
	requireStatus(t, status, 200)

	count, ok := extractField(data, "data.total_count").(float64)
	if !ok || count < 1 {
		t.Fatalf("expected data.total_count >= 1, got %v", extractField(data, "data.total_count"))
	}
	avg, ok := extractField(data, "data.average_rating").(float64)
	if !ok || avg < 1 || avg > 5 {
		t.Fatalf("expected data.average_rating in [1,5], got %v", extractField(data, "data.average_rating"))
	}
}
