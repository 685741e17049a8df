package service

import (
	"context"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/internal/mockdata"
	"github.com/easyqist/storefront/internal/repository"
)

// CatalogService exposes catalog lookups and the fixed installment package set.
type CatalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.productRepo.List(ctx, filter)
}

// InstallmentPackages returns the selectable payment plans. The set is fixed;
// the system never creates or mutates packages.
func (s *CatalogService) InstallmentPackages(ctx context.Context) []domain.InstallmentPackage {
	return mockdata.InstallmentPackages()
}
