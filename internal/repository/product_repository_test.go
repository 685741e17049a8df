package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/pkg/apperr"
)

func TestProductList(t *testing.T) {
	store := NewStore("", zap.NewNop().Sugar(), nil, seedProducts(), nil)
	repo := NewProductRepository(store)
	ctx := context.Background()

	featured := true

	tests := []struct {
		name        string
		filter      domain.ProductFilter
		expectedIDs []string
	}{
		{name: "no filter keeps catalog order", filter: domain.ProductFilter{}, expectedIDs: []string{"p1", "p2", "p3"}},
		{name: "category", filter: domain.ProductFilter{Category: "X"}, expectedIDs: []string{"p1", "p3"}},
		{name: "featured only", filter: domain.ProductFilter{Featured: &featured}, expectedIDs: []string{"p2"}},
		{name: "search is case-insensitive", filter: domain.ProductFilter{Search: "gam"}, expectedIDs: []string{"p3"}},
		{name: "sort by price ascending", filter: domain.ProductFilter{SortBy: "price_asc"}, expectedIDs: []string{"p1", "p3", "p2"}},
		{name: "sort by price descending", filter: domain.ProductFilter{SortBy: "price_desc"}, expectedIDs: []string{"p2", "p3", "p1"}},
		{name: "sort by name", filter: domain.ProductFilter{SortBy: "name"}, expectedIDs: []string{"p1", "p2", "p3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}
}

func TestProductGetByID(t *testing.T) {
	store := NewStore("", zap.NewNop().Sugar(), nil, seedProducts(), nil)
	repo := NewProductRepository(store)
	ctx := context.Background()

	p, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", p.Name)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
