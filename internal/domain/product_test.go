package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductPrimaryImage(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    string
	}{
		{
			name:    "prefers first uploaded image",
			product: Product{ImageURL: "/legacy.webp", ImageURLs: []string{"/a.webp", "/b.webp"}},
			want:    "/a.webp",
		},
		{
			name:    "falls back to single image",
			product: Product{ImageURL: "/legacy.webp"},
			want:    "/legacy.webp",
		},
		{
			name:    "no imagery",
			product: Product{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.product.PrimaryImage())
		})
	}
}
