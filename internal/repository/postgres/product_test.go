package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpnaturals/storefront/internal/domain"
	"github.com/kpnaturals/storefront/internal/repository"
	apperrors "github.com/kpnaturals/storefront/pkg/errors"
)

var productColumns = []string{
	"id", "name", "slug", "description", "price_cents",
	"currency", "image_url", "image_urls", "created_at", "updated_at",
}

func sampleProduct() domain.Product {
	return domain.Product{
		ID:          "a2f1c7be-9c35-4f58-8d3a-6a0f2f6d9b11",
		Name:        "Coconut Hair Oil",
		Slug:        "coconut-hair-oil",
		Description: "Cold pressed coconut oil infused with hibiscus.",
		PriceCents:  1499,
		Currency:    "USD",
		ImageURL:    "/coconut-hair-oil.webp",
		ImageURLs:   []string{"/coconut-hair-oil.webp", "/coconut-hair-oil-back.webp"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func productRow(rows *pgxmock.Rows, p domain.Product) *pgxmock.Rows {
	return rows.AddRow(
		p.ID, p.Name, p.Slug, p.Description, p.PriceCents,
		p.Currency, p.ImageURL, p.ImageURLs, p.CreatedAt, p.UpdatedAt,
	)
}

func productRowWithTotal(rows *pgxmock.Rows, p domain.Product, total int) *pgxmock.Rows {
	return rows.AddRow(
		p.ID, p.Name, p.Slug, p.Description, p.PriceCents,
		p.Currency, p.ImageURL, p.ImageURLs, p.CreatedAt, p.UpdatedAt, total,
	)
}

// ─── GetByID / GetBySlug ───

func TestProductRepository_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	want := sampleProduct()
	rows := pgxmock.NewRows(productColumns)
	productRow(rows, want)

	mock.ExpectQuery("FROM products WHERE id").
		WithArgs(want.ID).
		WillReturnRows(rows)

	product, err := repo.GetByID(context.Background(), want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.Name, product.Name)
	assert.Equal(t, want.ImageURLs, product.ImageURLs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery("FROM products WHERE id").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	product, err := repo.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductRepository_GetBySlug(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	want := sampleProduct()
	rows := pgxmock.NewRows(productColumns)
	productRow(rows, want)

	mock.ExpectQuery("FROM products WHERE slug").
		WithArgs("coconut-hair-oil").
		WillReturnRows(rows)

	product, err := repo.GetBySlug(context.Background(), "coconut-hair-oil")

	require.NoError(t, err)
	assert.Equal(t, want.ID, product.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ─── List ───

func TestProductRepository_List(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	first := sampleProduct()
	second := sampleProduct()
	second.ID = "b3e2d8cf-0d46-4a69-9e4b-7b1f3a7e0c22"
	second.Slug = "rosemary-hair-oil"
	second.CreatedAt = now.Add(-time.Hour)

	rows := pgxmock.NewRows(append(productColumns, "total_count"))
	productRowWithTotal(rows, first, 2)
	productRowWithTotal(rows, second, 2)

	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(20, 0).
		WillReturnRows(rows)

	products, total, err := repo.List(context.Background(), repository.ProductFilter{Page: 1, PerPage: 20})

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 2, total)
	assert.Equal(t, "rosemary-hair-oil", products[1].Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_List_WithSearch(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	rows := pgxmock.NewRows(append(productColumns, "total_count"))
	productRowWithTotal(rows, sampleProduct(), 1)

	mock.ExpectQuery("WHERE name ILIKE").
		WithArgs("%coconut%", 10, 10).
		WillReturnRows(rows)

	products, total, err := repo.List(context.Background(), repository.ProductFilter{
		Search:  strPtr("coconut"),
		Page:    2,
		PerPage: 10,
	})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 1, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_List_Empty(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(20, 0).
		WillReturnRows(pgxmock.NewRows(append(productColumns, "total_count")))

	products, total, err := repo.List(context.Background(), repository.ProductFilter{Page: 1, PerPage: 20})

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
	assert.Zero(t, total)
}

func TestProductRepository_List_QueryError(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(20, 0).
		WillReturnError(errors.New("connection reset"))

	products, _, err := repo.List(context.Background(), repository.ProductFilter{Page: 1, PerPage: 20})

	require.Error(t, err)
	assert.Nil(t, products)
}

// ─── ListNewest ───

func TestProductRepository_ListNewest(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	rows := pgxmock.NewRows(productColumns)
	productRow(rows, sampleProduct())

	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(12).
		WillReturnRows(rows)

	products, err := repo.ListNewest(context.Background(), 12)

	require.NoError(t, err)
	require.Len(t, products, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_ListNewest_DefaultLimit(t *testing.T) {
	mock := newMock(t)
	repo := NewProductRepository(mock)

	mock.ExpectQuery("ORDER BY created_at DESC").
		WithArgs(12).
		WillReturnRows(pgxmock.NewRows(productColumns))

	products, err := repo.ListNewest(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, products)
	require.NoError(t, mock.ExpectationsWereMet())
}
