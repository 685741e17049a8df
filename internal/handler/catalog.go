package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/internal/service"
	"github.com/easyqist/storefront/pkg/response"
)

type CatalogHandler struct {
	service *service.CatalogService
}

func NewCatalogHandler(service *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.ProductFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		SortBy:   q.Get("sort"),
	}
	if v := q.Get("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}

	products, err := h.service.ListProducts(r.Context(), filter)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["productId"]

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, product)
}

func (h *CatalogHandler) ListInstallmentPackages(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.service.InstallmentPackages(r.Context()))
}
