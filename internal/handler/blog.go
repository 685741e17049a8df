package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/easyqist/storefront/internal/repository"
	"github.com/easyqist/storefront/pkg/response"
)

type BlogHandler struct {
	repo repository.BlogRepository
}

func NewBlogHandler(repo repository.BlogRepository) *BlogHandler {
	return &BlogHandler{repo: repo}
}

func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.repo.List(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, posts)
}

func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.repo.GetBySlug(r.Context(), slug)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, post)
}
