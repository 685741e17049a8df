package repository

import (
	"context"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/pkg/apperr"
)

type cartRepository struct {
	store *Store
}

func NewCartRepository(store *Store) CartRepository {
	return &cartRepository{store: store}
}

func (r *cartRepository) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	items := make([]domain.CartItem, 0)
	for _, item := range r.store.cart {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *cartRepository) GetByID(ctx context.Context, itemID string) (*domain.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.cart {
		if item.ID == itemID {
			found := item
			return &found, nil
		}
	}
	return nil, apperr.WrapCartItemNotFound(itemID)
}

func (r *cartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	r.store.mu.Lock()
	r.store.cart = append(r.store.cart, *item)
	r.store.mu.Unlock()

	r.store.persist()
	return nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	r.store.mu.Lock()
	updated := false
	for i := range r.store.cart {
		if r.store.cart[i].ID == itemID {
			r.store.cart[i].Quantity = quantity
			updated = true
			break
		}
	}
	r.store.mu.Unlock()

	if !updated {
		return apperr.WrapCartItemNotFound(itemID)
	}
	r.store.persist()
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, itemID string) error {
	r.store.mu.Lock()
	kept := r.store.cart[:0]
	removed := false
	for _, item := range r.store.cart {
		if item.ID == itemID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	r.store.cart = kept
	r.store.mu.Unlock()

	if !removed {
		return apperr.WrapCartItemNotFound(itemID)
	}
	r.store.persist()
	return nil
}

func (r *cartRepository) ClearByUser(ctx context.Context, userID string) error {
	r.store.mu.Lock()
	kept := r.store.cart[:0]
	for _, item := range r.store.cart {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	r.store.cart = kept
	r.store.mu.Unlock()

	r.store.persist()
	return nil
}
