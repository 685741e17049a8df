package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/easyqist/storefront/internal/domain"
)

func seedUsers() []domain.User {
	return []domain.User{
		{ID: "u1", Email: "a@example.com", Password: "pw", Name: "A", Role: domain.RoleCustomer},
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Alpha", Price: decimal.NewFromInt(10), Stock: 5, Category: "X"},
		{ID: "p2", Name: "Beta", Price: decimal.NewFromInt(30), Stock: 5, Category: "Y", Featured: true},
		{ID: "p3", Name: "Gamma", Price: decimal.NewFromInt(20), Stock: 5, Category: "X"},
	}
}

func TestStateFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")

	store := NewStore(path, zap.NewNop().Sugar(), seedUsers(), seedProducts(), nil)
	require.NoError(t, store.Load())

	carts := NewCartRepository(store)
	orders := NewOrderRepository(store)
	session := NewSessionRepository(store)

	user := seedUsers()[0]
	require.NoError(t, session.SetCurrentUser(ctx, &user))
	require.NoError(t, carts.Create(ctx, &domain.CartItem{ID: "c1", UserID: "u1", ProductID: "p1", Quantity: 2, AddedAt: time.Now()}))
	require.NoError(t, orders.Create(ctx, &domain.Order{
		ID:        "o1",
		UserID:    "u1",
		Items:     []domain.OrderItem{{ProductID: "p1", ProductName: "Alpha", Quantity: 2, Price: decimal.NewFromInt(10)}},
		Total:     decimal.NewFromInt(30),
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
	}))

	// a fresh store seeded the same way picks the snapshot back up
	reloaded := NewStore(path, zap.NewNop().Sugar(), seedUsers(), seedProducts(), nil)
	require.NoError(t, reloaded.Load())

	gotSession, err := NewSessionRepository(reloaded).CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, gotSession)
	assert.Equal(t, "u1", gotSession.ID)

	gotCart, err := NewCartRepository(reloaded).ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, gotCart, 1)
	assert.Equal(t, 2, gotCart[0].Quantity)

	gotOrders, err := NewOrderRepository(reloaded).ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, gotOrders, 1)
	assert.True(t, gotOrders[0].Total.Equal(decimal.NewFromInt(30)))
}

func TestStateFile_PersistsOnlySessionCartOrders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store := NewStore(path, zap.NewNop().Sugar(), seedUsers(), seedProducts(), nil)
	require.NoError(t, store.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Contains(t, raw, "current_user")
	assert.Contains(t, raw, "cart")
	assert.Contains(t, raw, "orders")
	assert.NotContains(t, raw, "users", "the user directory is reseeded, never persisted")
	assert.NotContains(t, raw, "products", "the catalog is reseeded, never persisted")
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	store := NewStore(path, zap.NewNop().Sugar(), nil, nil, nil)
	require.NoError(t, store.Load())
}

func TestOrderUpdate_FailedMutationWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := NewStore("", zap.NewNop().Sugar(), nil, nil, nil)
	orders := NewOrderRepository(store)

	require.NoError(t, orders.Create(ctx, &domain.Order{ID: "o1", UserID: "u1", Status: domain.OrderStatusPending}))

	boom := errors.New("rejected")
	err := orders.Update(ctx, "o1", func(o *domain.Order) error {
		o.Status = domain.OrderStatusCompleted
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := orders.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, got.Status)
}

func TestOrderGetByID_CopiesScheduleMemory(t *testing.T) {
	ctx := context.Background()
	store := NewStore("", zap.NewNop().Sugar(), nil, nil, nil)
	orders := NewOrderRepository(store)

	require.NoError(t, orders.Create(ctx, &domain.Order{
		ID:     "o1",
		UserID: "u1",
		Status: domain.OrderStatusPending,
		PaymentSchedule: []domain.InstallmentPayment{
			{PaymentNumber: 1, Amount: decimal.NewFromInt(10), Status: domain.PaymentStatusPending},
		},
	}))

	got, err := orders.GetByID(ctx, "o1")
	require.NoError(t, err)

	// mutating the returned copy must not leak into the store
	got.PaymentSchedule[0].Status = domain.PaymentStatusPaid

	again, err := orders.GetByID(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, again.PaymentSchedule[0].Status)
}
