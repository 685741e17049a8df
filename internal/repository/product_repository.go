package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/pkg/apperr"
)

type productRepository struct {
	store *Store
}

func NewProductRepository(store *Store) ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, apperr.WrapProductNotFound(id)
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	r.store.mu.RLock()
	products := make([]domain.Product, 0, len(r.store.productOrder))
	for _, id := range r.store.productOrder {
		products = append(products, r.store.products[id])
	}
	r.store.mu.RUnlock()

	filtered := products[:0]
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch filter.SortBy {
	case "price_asc":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case "price_desc":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		})
	case "name":
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	}

	return filtered, nil
}
