package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/internal/mockdata"
	"github.com/easyqist/storefront/internal/repository"
	"github.com/easyqist/storefront/internal/schedule"
	"github.com/easyqist/storefront/pkg/apperr"
)

// CheckoutConfig carries the business knobs the checkout flow runs on.
type CheckoutConfig struct {
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	ProcessingDelay       time.Duration
}

// CheckoutService creates orders from cart snapshots and governs the order and
// payment-schedule lifecycle afterwards. An order is created once, atomically,
// with its full schedule computed synchronously; it is never regenerated.
type CheckoutService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	notifier    *Notifier
	logger      *zap.SugaredLogger
	cfg         CheckoutConfig

	// one checkout in flight per user, mirroring the client's processing flag
	inFlightMu sync.Mutex
	inFlight   map[string]bool

	now func() time.Time
}

func NewCheckoutService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	notifier *Notifier,
	logger *zap.SugaredLogger,
	cfg CheckoutConfig,
) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		notifier:    notifier,
		logger:      logger,
		cfg:         cfg,
		inFlight:    make(map[string]bool),
		now:         time.Now,
	}
}

// Totals computes the checkout totals for a user's current cart: subtotal,
// shipping (waived above the free-shipping threshold), and the base total the
// schedule builder applies interest to.
func (s *CheckoutService) Totals(ctx context.Context, userID string) (domain.OrderTotals, error) {
	items, err := s.snapshotCart(ctx, userID)
	if err != nil {
		return domain.OrderTotals{}, err
	}
	return schedule.ComputeTotals(items, s.cfg.FreeShippingThreshold, s.cfg.ShippingFee), nil
}

// CreateOrder turns the user's cart into an order. If installmentMonths is
// non-zero the matching package is resolved and a payment schedule is built;
// otherwise the order is a single full-payment obligation. On success the cart
// is cleared and one notification is emitted. Validation failures surface a
// notification and create nothing.
func (s *CheckoutService) CreateOrder(ctx context.Context, userID, shippingAddress string, installmentMonths int) (*domain.Order, error) {
	if !s.beginCheckout(userID) {
		return nil, apperr.WrapValidation("checkout already in progress")
	}
	defer s.endCheckout(userID)

	if strings.TrimSpace(shippingAddress) == "" {
		s.notifier.Publish(userID, "Shipping address is required", domain.NotificationError)
		return nil, apperr.WrapValidation("shipping address is required")
	}

	var pkg *domain.InstallmentPackage
	if installmentMonths != 0 {
		found, ok := mockdata.PackageByMonths(installmentMonths)
		if !ok {
			s.notifier.Publish(userID, "Selected installment plan is not available", domain.NotificationError)
			return nil, apperr.WrapUnsupportedPackage(installmentMonths)
		}
		pkg = &found
	}

	items, err := s.snapshotCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		s.notifier.Publish(userID, "Your cart is empty", domain.NotificationError)
		return nil, apperr.WrapEmptyCart()
	}

	totals := schedule.ComputeTotals(items, s.cfg.FreeShippingThreshold, s.cfg.ShippingFee)

	// Simulated payment processing. Nothing is written until it resolves, so
	// no partial effects are observable while the pause runs.
	if s.cfg.ProcessingDelay > 0 {
		time.Sleep(s.cfg.ProcessingDelay)
	}

	createdAt := s.now()

	var payments []domain.InstallmentPayment
	if pkg != nil {
		payments, err = schedule.Build(totals.Total, *pkg, createdAt)
		if err != nil {
			return nil, err
		}
	}

	order := &domain.Order{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Items:              items,
		Total:              totals.Total,
		InstallmentPackage: pkg,
		PaymentSchedule:    payments,
		Status:             domain.OrderStatusPending,
		ShippingAddress:    shippingAddress,
		CreatedAt:          createdAt,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	if err := s.cartRepo.ClearByUser(ctx, userID); err != nil {
		return nil, err
	}

	if pkg != nil {
		s.logger.Infow("order created with installment plan",
			"order_id", order.ID, "user_id", userID, "months", pkg.Months, "total", totals.Total)
		s.notifier.Publish(userID,
			fmt.Sprintf("Order booked with %d-month installment plan!", pkg.Months),
			domain.NotificationSuccess)
	} else {
		s.logger.Infow("order created", "order_id", order.ID, "user_id", userID, "total", totals.Total)
		s.notifier.Publish(userID, "Order placed successfully!", domain.NotificationSuccess)
	}

	return order, nil
}

// GetUserOrders returns a user's orders in creation order, with overdue
// statuses derived against the current clock.
func (s *CheckoutService) GetUserOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.applyDerivedStatus(orders)
	return orders, nil
}

// GetOrder returns one order with derived payment statuses.
func (s *CheckoutService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.PaymentSchedule = schedule.ApplyEffectiveStatus(order.PaymentSchedule, s.now())
	return order, nil
}

// ListAllOrders returns every order for the admin dashboard.
func (s *CheckoutService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	s.applyDerivedStatus(orders)
	return orders, nil
}

// MarkInstallmentPaid advances one schedule entry to paid, recording paidAt.
// Paid is terminal: re-paying fails with an invalid-transition error. A late
// payment on an overdue entry is allowed. Sibling entries are untouched.
func (s *CheckoutService) MarkInstallmentPaid(ctx context.Context, orderID string, paymentNumber int) error {
	paidAt := s.now()

	var ownerID string
	err := s.orderRepo.Update(ctx, orderID, func(order *domain.Order) error {
		ownerID = order.UserID
		for i := range order.PaymentSchedule {
			p := &order.PaymentSchedule[i]
			if p.PaymentNumber != paymentNumber {
				continue
			}
			if p.Status == domain.PaymentStatusPaid {
				return apperr.WrapPaymentAlreadyPaid(orderID, paymentNumber)
			}
			p.Status = domain.PaymentStatusPaid
			p.PaidAt = &paidAt
			return nil
		}
		return apperr.WrapPaymentNotFound(orderID, paymentNumber)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("installment marked paid", "order_id", orderID, "payment_number", paymentNumber)
	s.notifier.Publish(ownerID, fmt.Sprintf("Payment #%d recorded for order %s", paymentNumber, orderID), domain.NotificationSuccess)
	return nil
}

// order status transitions; cancelled is reachable from pending or processing
var allowedTransitions = map[string][]string{
	domain.OrderStatusPending:    {domain.OrderStatusProcessing, domain.OrderStatusCancelled},
	domain.OrderStatusProcessing: {domain.OrderStatusCompleted, domain.OrderStatusCancelled},
}

// UpdateOrderStatus applies an administrative order transition.
func (s *CheckoutService) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	var ownerID string
	err := s.orderRepo.Update(ctx, orderID, func(order *domain.Order) error {
		ownerID = order.UserID
		for _, next := range allowedTransitions[order.Status] {
			if next == status {
				order.Status = status
				return nil
			}
		}
		return apperr.WrapInvalidOrderStatus(order.Status, status)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("order status updated", "order_id", orderID, "status", status)
	s.notifier.Publish(ownerID, fmt.Sprintf("Order %s is now %s", orderID, status), domain.NotificationInfo)
	return nil
}

// snapshotCart resolves cart lines against the catalog into immutable order
// items, independent of later catalog changes.
func (s *CheckoutService) snapshotCart(ctx context.Context, userID string) ([]domain.OrderItem, error) {
	cartItems, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    item.Quantity,
			Price:       product.Price,
		})
	}
	return items, nil
}

func (s *CheckoutService) applyDerivedStatus(orders []domain.Order) {
	now := s.now()
	for i := range orders {
		orders[i].PaymentSchedule = schedule.ApplyEffectiveStatus(orders[i].PaymentSchedule, now)
	}
}

func (s *CheckoutService) beginCheckout(userID string) bool {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()
	if s.inFlight[userID] {
		return false
	}
	s.inFlight[userID] = true
	return true
}

func (s *CheckoutService) endCheckout(userID string) {
	s.inFlightMu.Lock()
	delete(s.inFlight, userID)
	s.inFlightMu.Unlock()
}
