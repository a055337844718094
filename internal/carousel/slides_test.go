package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpnaturals/storefront/internal/domain"
)

func TestFallbackSlides(t *testing.T) {
	slides := FallbackSlides()

	require.Len(t, slides, MinSlides)
	assert.Equal(t, "/product-carousel-1.webp", slides[0].Src)
	assert.Equal(t, "KP Naturals Hair Oil with Hibiscus and Coconuts", slides[0].Alt)

	// Each call returns a fresh deck that callers can mutate freely.
	slides[0].Src = "mutated"
	assert.Equal(t, "/product-carousel-1.webp", FallbackSlides()[0].Src)
}

func TestBuildSlides_NoImagery(t *testing.T) {
	fallbacks := FallbackSlides()

	slides := BuildSlides([]domain.Product{{Name: "No Images"}}, fallbacks)

	assert.Equal(t, fallbacks, slides)
}

func TestBuildSlides_EmptyProducts(t *testing.T) {
	fallbacks := FallbackSlides()

	slides := BuildSlides(nil, fallbacks)

	assert.Equal(t, fallbacks, slides)
}

func TestBuildSlides_FlattensImageLists(t *testing.T) {
	products := []domain.Product{
		{Name: "Coconut Hair Oil", ImageURLs: []string{"/a.webp", "/b.webp"}},
		{Name: "Rosemary Hair Oil", ImageURL: "/c.webp"},
	}

	slides := BuildSlides(products, FallbackSlides())

	require.GreaterOrEqual(t, len(slides), 3)
	assert.Equal(t, Slide{Src: "/a.webp", Alt: "Coconut Hair Oil"}, slides[0])
	assert.Equal(t, Slide{Src: "/b.webp", Alt: "Coconut Hair Oil"}, slides[1])
	assert.Equal(t, Slide{Src: "/c.webp", Alt: "Rosemary Hair Oil"}, slides[2])
}

func TestBuildSlides_SingleImageIgnoredWhenListPresent(t *testing.T) {
	products := []domain.Product{
		{Name: "Coconut Hair Oil", ImageURL: "/legacy.webp", ImageURLs: []string{"/a.webp"}},
	}

	slides := BuildSlides(products, FallbackSlides())

	for _, s := range slides {
		assert.NotEqual(t, "/legacy.webp", s.Src)
	}
}

func TestBuildSlides_DedupesFirstWins(t *testing.T) {
	products := []domain.Product{
		{Name: "First", ImageURLs: []string{"/shared.webp"}},
		{Name: "Second", ImageURLs: []string{"/shared.webp", "/other.webp"}},
	}

	slides := BuildSlides(products, FallbackSlides())

	srcs := make(map[string]int)
	for _, s := range slides {
		srcs[s.Src]++
	}
	assert.Equal(t, 1, srcs["/shared.webp"])
	// The first product to contribute the source keeps its caption.
	assert.Equal(t, Slide{Src: "/shared.webp", Alt: "First"}, slides[0])
}

func TestBuildSlides_PadsToMinimum(t *testing.T) {
	products := []domain.Product{
		{Name: "Coconut Hair Oil", ImageURLs: []string{"/a.webp", "/b.webp"}},
	}
	fallbacks := FallbackSlides()

	slides := BuildSlides(products, fallbacks)

	require.Len(t, slides, MinSlides)
	assert.Equal(t, "/a.webp", slides[0].Src)
	assert.Equal(t, "/b.webp", slides[1].Src)
	// The remaining positions come from the fallback deck in order.
	assert.Equal(t, fallbacks[0], slides[2])
	assert.Equal(t, fallbacks[3], slides[5])
}

func TestBuildSlides_NoPaddingBeyondMinimum(t *testing.T) {
	var products []domain.Product
	for i := 0; i < 8; i++ {
		products = append(products, domain.Product{
			Name:      "Product",
			ImageURLs: []string{"/img-" + string(rune('a'+i)) + ".webp"},
		})
	}

	slides := BuildSlides(products, FallbackSlides())

	assert.Len(t, slides, 8)
}

func TestBuildSlides_UploadMatchingFallbackNotDuplicated(t *testing.T) {
	products := []domain.Product{
		{Name: "Coconut Hair Oil", ImageURLs: []string{"/product-carousel-1.webp"}},
	}

	slides := BuildSlides(products, FallbackSlides())

	require.Len(t, slides, MinSlides)
	srcs := make(map[string]int)
	for _, s := range slides {
		srcs[s.Src]++
	}
	assert.Equal(t, 1, srcs["/product-carousel-1.webp"])
	// The uploaded caption wins over the fallback caption.
	assert.Equal(t, "Coconut Hair Oil", slides[0].Alt)
}

func TestBuildSlides_BlankNameGetsDefaultAlt(t *testing.T) {
	products := []domain.Product{
		{ImageURLs: []string{"/a.webp"}},
	}

	slides := BuildSlides(products, FallbackSlides())

	assert.Equal(t, "Product image", slides[0].Alt)
}

func TestBuildSlides_SkipsBlankImageEntries(t *testing.T) {
	products := []domain.Product{
		{Name: "Coconut Hair Oil", ImageURLs: []string{"", "/a.webp", ""}},
	}

	slides := BuildSlides(products, FallbackSlides())

	assert.Equal(t, "/a.webp", slides[0].Src)
	for _, s := range slides {
		assert.NotEmpty(t, s.Src)
	}
}
