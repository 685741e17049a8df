package repository

import (
	"context"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/pkg/apperr"
)

type blogRepository struct {
	store *Store
}

func NewBlogRepository(store *Store) BlogRepository {
	return &blogRepository{store: store}
}

func (r *blogRepository) List(ctx context.Context) ([]domain.BlogPost, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]domain.BlogPost(nil), r.store.blogPosts...), nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, post := range r.store.blogPosts {
		if post.Slug == slug {
			found := post
			return &found, nil
		}
	}
	return nil, apperr.WrapBlogPostNotFound(slug)
}
