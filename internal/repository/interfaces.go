package repository

import (
	"context"

	"github.com/easyqist/storefront/internal/domain"
)

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	// GetByID retrieves a product by its ID
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// List retrieves products matching a filter, in catalog order unless sorted
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

// UserRepository defines the interface for user directory operations
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create registers a new user; fails if the email is taken
	Create(ctx context.Context, user *domain.User) error
}

// CartRepository defines the interface for cart data operations
type CartRepository interface {
	// ListByUser retrieves all cart items belonging to a user
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)

	// GetByID retrieves a single cart item
	GetByID(ctx context.Context, itemID string) (*domain.CartItem, error)

	// Create adds a new cart line
	Create(ctx context.Context, item *domain.CartItem) error

	// UpdateQuantity sets the quantity of an existing line
	UpdateQuantity(ctx context.Context, itemID string, quantity int) error

	// Delete removes a cart line
	Delete(ctx context.Context, itemID string) error

	// ClearByUser removes every cart line belonging to a user
	ClearByUser(ctx context.Context, userID string) error
}

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create appends a new order
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by ID
	GetByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListByUser retrieves a user's orders, stable by creation time
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)

	// ListAll retrieves every order, stable by creation time
	ListAll(ctx context.Context) ([]domain.Order, error)

	// Update applies a mutation to an order under the store's write lock;
	// if fn returns an error nothing is written
	Update(ctx context.Context, orderID string, fn func(*domain.Order) error) error
}

// BlogRepository defines the interface for editorial content
type BlogRepository interface {
	// List retrieves all blog posts
	List(ctx context.Context) ([]domain.BlogPost, error)

	// GetBySlug retrieves a post by its slug
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
}

// SessionRepository mirrors the client-local session slot of the persisted state
type SessionRepository interface {
	// CurrentUser returns the snapshotted session user, if any
	CurrentUser(ctx context.Context) (*domain.User, error)

	// SetCurrentUser records the session user; nil clears it
	SetCurrentUser(ctx context.Context, user *domain.User) error
}
