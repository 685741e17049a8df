package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/internal/repository"
	"github.com/easyqist/storefront/pkg/apperr"
)

// CartLine is a cart item joined against the catalog for presentation.
type CartLine struct {
	Item    domain.CartItem `json:"item"`
	Product domain.Product  `json:"product"`
}

// CartService manages a user's cart lines. Quantities merge into existing
// lines and are clamped so they never exceed the product's available stock.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	notifier    *Notifier
	logger      *zap.SugaredLogger
}

func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	notifier *Notifier,
	logger *zap.SugaredLogger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// AddToCart merges quantity into an existing line for the same product, or
// creates a new line. The resulting quantity is clamped to available stock.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string, quantity int) error {
	if quantity <= 0 {
		return apperr.WrapValidation("quantity must be positive")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.ProductID == productID {
			merged := clampQuantity(item.Quantity+quantity, product.Stock)
			if err := s.cartRepo.UpdateQuantity(ctx, item.ID, merged); err != nil {
				return err
			}
			s.notifier.Publish(userID, fmt.Sprintf("%s added to cart!", product.Name), domain.NotificationSuccess)
			return nil
		}
	}

	newItem := &domain.CartItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  clampQuantity(quantity, product.Stock),
		AddedAt:   time.Now(),
	}
	if err := s.cartRepo.Create(ctx, newItem); err != nil {
		return err
	}

	s.notifier.Publish(userID, fmt.Sprintf("%s added to cart!", product.Name), domain.NotificationSuccess)
	return nil
}

// RemoveFromCart deletes a cart line.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, itemID string) error {
	item, err := s.cartRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return apperr.WrapCartItemNotFound(itemID)
	}

	if err := s.cartRepo.Delete(ctx, itemID); err != nil {
		return err
	}

	s.notifier.Publish(userID, "Item removed from cart", domain.NotificationInfo)
	return nil
}

// SetQuantity updates a line's quantity; zero or less removes the line.
func (s *CartService) SetQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, userID, itemID)
	}

	item, err := s.cartRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return apperr.WrapCartItemNotFound(itemID)
	}

	product, err := s.productRepo.GetByID(ctx, item.ProductID)
	if err != nil {
		return err
	}

	return s.cartRepo.UpdateQuantity(ctx, itemID, clampQuantity(quantity, product.Stock))
}

// GetCart returns the user's cart joined against the catalog.
func (s *CartService) GetCart(ctx context.Context, userID string) ([]CartLine, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			// catalog was reseeded without this product; skip the stale line
			s.logger.Warnw("cart references unknown product", "product_id", item.ProductID)
			continue
		}
		lines = append(lines, CartLine{Item: item, Product: *product})
	}
	return lines, nil
}

// Subtotal computes the cart subtotal by joining against the catalog.
func (s *CartService) Subtotal(ctx context.Context, userID string) (decimal.Decimal, error) {
	lines, err := s.GetCart(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Item.Quantity))))
	}
	return subtotal, nil
}

func clampQuantity(quantity, stock int) int {
	if quantity > stock {
		return stock
	}
	return quantity
}
