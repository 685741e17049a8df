package service

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/internal/repository"
)

// test fixture wiring real in-memory repositories, no state file
type testEnv struct {
	store    *repository.Store
	products repository.ProductRepository
	users    repository.UserRepository
	carts    repository.CartRepository
	orders   repository.OrderRepository
	session  repository.SessionRepository
	notifier *Notifier

	auth     *AuthService
	cart     *CartService
	checkout *CheckoutService
}

func newTestEnv() *testEnv {
	users := []domain.User{
		{ID: "u1", Email: "customer@example.com", Password: "customer123", Name: "John Doe", Role: domain.RoleCustomer},
		{ID: "admin", Email: "admin@easyqist.com", Password: "admin123", Name: "Admin User", Role: domain.RoleAdmin},
	}
	products := []domain.Product{
		{ID: "p1", Name: "Wireless Headphones", Price: decimal.NewFromInt(100), Stock: 10, Category: "Electronics"},
		{ID: "p2", Name: "Wireless Mouse", Price: decimal.NewFromInt(25), Stock: 3, Category: "Accessories"},
		{ID: "p3", Name: "Smart Watch", Price: decimal.NewFromInt(300), Stock: 5, Category: "Electronics", Featured: true},
	}

	store := repository.NewStore("", zap.NewNop().Sugar(), users, products, nil)

	env := &testEnv{
		store:    store,
		products: repository.NewProductRepository(store),
		users:    repository.NewUserRepository(store),
		carts:    repository.NewCartRepository(store),
		orders:   repository.NewOrderRepository(store),
		session:  repository.NewSessionRepository(store),
		notifier: NewNotifier(time.Minute),
	}

	logger := zap.NewNop().Sugar()
	env.auth = NewAuthService(env.users, env.session, env.carts, env.notifier, logger, "test-secret", time.Hour)
	env.cart = NewCartService(env.carts, env.products, env.notifier, logger)
	env.checkout = NewCheckoutService(env.orders, env.carts, env.products, env.notifier, logger, CheckoutConfig{
		FreeShippingThreshold: decimal.NewFromInt(100),
		ShippingFee:           decimal.NewFromInt(10),
	})

	return env
}
