package integration

import (
	"testing"
)

// TestListProducts verifies the paginated catalog listing.
func TestListProducts(t *testing.T) {
	skipIfNotRunning(t, storefrontPort)

	status, data := httpGet(t, baseURL(storefrontPort)+"/api/v1/products?per_page=5")
	requireStatus(t, status, 200)

	products := extractList(t, data, "data")
	if len(products) > 5 {
		t.Fatalf("expected at most 5 products per page, got %d", len(products))
	}
	if extractField(data, "total_count") == nil {
		t.Fatal("expected total_count in paginated response")
	}
	if extractField(data, "page") == nil {
		t.Fatal("expected page in paginated response")
	}
}

// TestGetProductByID verifies that a product can be retrieved by its UUID.
func TestGetProductByID(t *testing.T) {
	skipIfNotRunning(t, storefrontPort)

	productID := firstProductID(t, storefrontPort)

	status, data := httpGet(t, baseURL(storefrontPort)+"/api/v1/products/"+productID)
	requireStatus(t, status, 200)

	if got := extractString(t, data, "data.id"); got != productID {
		t.Fatalf("expected product id %s, got %s", productID, got)
	}
}

// TestGetProductBySlug verifies slug lookup returns the same product.
func TestGetProductBySlug(t *testing.T) {
	skipIfNotRunning(t, storefrontPort)

	productID := firstProductID(t, storefrontPort)

	status, data := httpGet(t, baseURL(storefrontPort)+"/api/v1/products/"+productID)
	requireStatus(t, status, 200)
	slug := extractString(t, data, "data.slug")

	status, data = httpGet(t, baseURL(storefrontPort)+"/api/v1/products/"+slug)
	requireStatus(t, status, 200)
	if got := extractString(t, data, "data.id"); got != productID {
		t.Fatalf("slug lookup returned product %s, want %s", got, productID)
	}
}

// TestGetProductNotFound verifies the 404 envelope for unknown products.
func TestGetProductNotFound(t *testing.T) {
	skipIfNotRunning(t, storefrontPort)

	status, data := httpGet(t, baseURL(storefrontPort)+"/api/v1/products/no-such-product-slug")
	requireStatus(t, status, 404)

	code := extractString(t, data, "error.code")
	if code != "NOT_FOUND" {
		t.Fatalf("expected error code NOT_FOUND, got %q", code)
	}
}

// TestCarouselSlides verifies the carousel endpoint always returns a full
// deck, whether or not the catalog has imagery.
func TestCarouselSlides(t *testing.T) {
	skipIfNotRunning(t, storefrontPort)

	status, data := httpGet(t, baseURL(storefrontPort)+"/api/v1/carousel")
	requireStatus(t, status, 200)

	slides := extractList(t, data, "slides")
	if len(slides) < 6 {
		t.Fatalf("expected at least 6 slides, got %d", len(slides))
	}
	for i, raw := range slides {
		s, ok := raw.(map[string]interface{})
		if !ok {
			t.Fatalf("expected slide object at index %d, got %T", i, raw)
		}
		if src, _ := s["src"].(string); src == "" {
			t.Fatalf("slide %d has empty src", i)
		}
	}
}
