package repository

import (
	"context"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/pkg/apperr"
)

type userRepository struct {
	store *Store
}

func NewUserRepository(store *Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, apperr.New(apperr.CodeUserNotFound, "user not found", apperr.ErrNotFound)
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.emailIndex[email]
	if !ok {
		return nil, apperr.New(apperr.CodeUserNotFound, "user not found", apperr.ErrNotFound)
	}
	u := r.store.users[id]
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.emailIndex[user.Email]; exists {
		return apperr.WrapEmailAlreadyExists(user.Email)
	}

	r.store.users[user.ID] = *user
	r.store.emailIndex[user.Email] = user.ID
	return nil
}
