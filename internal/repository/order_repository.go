package repository

import (
	"context"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/pkg/apperr"
)

type orderRepository struct {
	store *Store
}

func NewOrderRepository(store *Store) OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	r.store.mu.Lock()
	r.store.orders = append(r.store.orders, *order)
	r.store.mu.Unlock()

	r.store.persist()
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, orderID string) (*domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, order := range r.store.orders {
		if order.ID == orderID {
			return copyOrder(order), nil
		}
	}
	return nil, apperr.WrapOrderNotFound(orderID)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	// orders are appended at creation, so slice order is creation order
	orders := make([]domain.Order, 0)
	for _, order := range r.store.orders {
		if order.UserID == userID {
			orders = append(orders, *copyOrder(order))
		}
	}
	return orders, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]domain.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.store.orders))
	for _, order := range r.store.orders {
		orders = append(orders, *copyOrder(order))
	}
	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, orderID string, fn func(*domain.Order) error) error {
	r.store.mu.Lock()
	idx := -1
	for i := range r.store.orders {
		if r.store.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		r.store.mu.Unlock()
		return apperr.WrapOrderNotFound(orderID)
	}

	// mutate a copy so a failed fn leaves nothing half-written
	updated := copyOrder(r.store.orders[idx])
	if err := fn(updated); err != nil {
		r.store.mu.Unlock()
		return err
	}
	r.store.orders[idx] = *updated
	r.store.mu.Unlock()

	r.store.persist()
	return nil
}

// copyOrder deep-copies the slices so callers cannot alias store memory.
func copyOrder(o domain.Order) *domain.Order {
	out := o
	out.Items = append([]domain.OrderItem(nil), o.Items...)
	if o.PaymentSchedule != nil {
		out.PaymentSchedule = append([]domain.InstallmentPayment(nil), o.PaymentSchedule...)
	}
	if o.InstallmentPackage != nil {
		pkg := *o.InstallmentPackage
		out.InstallmentPackage = &pkg
	}
	return &out
}
