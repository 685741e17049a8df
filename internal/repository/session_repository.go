package repository

import (
	"context"

	"github.com/easyqist/storefront/internal/domain"
)

type sessionRepository struct {
	store *Store
}

func NewSessionRepository(store *Store) SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) CurrentUser(ctx context.Context) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.currentUser == nil {
		return nil, nil
	}
	u := *r.store.currentUser
	return &u, nil
}

func (r *sessionRepository) SetCurrentUser(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	if user == nil {
		r.store.currentUser = nil
	} else {
		u := *user
		r.store.currentUser = &u
	}
	r.store.mu.Unlock()

	r.store.persist()
	return nil
}
