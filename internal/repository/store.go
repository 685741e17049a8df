package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/easyqist/storefront/internal/domain"
)

// Store is the single shared mutable state of the storefront. All repositories
// operate on it under one mutex, so every mutation is atomic with respect to
// readers. Only the session user, the cart, and the orders are persisted; the
// catalog, user directory, and blog posts are reseeded on every start.
type Store struct {
	mu     sync.RWMutex
	path   string
	logger *zap.SugaredLogger

	users      map[string]domain.User
	emailIndex map[string]string // email -> user ID

	products     map[string]domain.Product
	productOrder []string

	blogPosts []domain.BlogPost

	cart        []domain.CartItem
	orders      []domain.Order
	currentUser *domain.User
}

// persistedState is the on-disk shape of the state file. Its structure is the
// system boundary: exactly what a storefront client keeps in local storage.
type persistedState struct {
	CurrentUser *domain.User      `json:"current_user"`
	Cart        []domain.CartItem `json:"cart"`
	Orders      []domain.Order    `json:"orders"`
}

// NewStore creates a store seeded with static data.
func NewStore(path string, logger *zap.SugaredLogger, users []domain.User, products []domain.Product, posts []domain.BlogPost) *Store {
	s := &Store{
		path:       path,
		logger:     logger,
		users:      make(map[string]domain.User, len(users)),
		emailIndex: make(map[string]string, len(users)),
		products:   make(map[string]domain.Product, len(products)),
		blogPosts:  posts,
		cart:       make([]domain.CartItem, 0),
		orders:     make([]domain.Order, 0),
	}

	for _, u := range users {
		s.users[u.ID] = u
		s.emailIndex[u.Email] = u.ID
	}
	for _, p := range products {
		s.products[p.ID] = p
		s.productOrder = append(s.productOrder, p.ID)
	}

	return s
}

// Load overlays a previously persisted snapshot onto the seeded store. A
// missing state file is not an error; the store simply starts empty.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read state file: %w", err)
	}

	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("decode state file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = state.CurrentUser
	if state.Cart != nil {
		s.cart = state.Cart
	}
	if state.Orders != nil {
		s.orders = state.Orders
	}

	return nil
}

// Save writes the persisted subset of the state to disk. The write goes
// through a temp file and a rename so readers never observe a torn snapshot.
func (s *Store) Save() error {
	s.mu.RLock()
	state := persistedState{
		CurrentUser: s.currentUser,
		Cart:        append([]domain.CartItem(nil), s.cart...),
		Orders:      append([]domain.Order(nil), s.orders...),
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	return nil
}

// persist flushes the snapshot after a mutation. Failures are logged, not
// propagated: the in-memory state is still authoritative for this run.
func (s *Store) persist() {
	if s.path == "" {
		return
	}
	if err := s.Save(); err != nil {
		s.logger.Errorw("failed to persist state", "error", err)
	}
}
