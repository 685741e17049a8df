package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem is an immutable snapshot of a cart line taken at checkout. Later
// catalog edits do not affect it.
type OrderItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Order is created once, atomically, at checkout. PaymentSchedule is present if
// and only if InstallmentPackage is; a full-payment order carries neither.
type Order struct {
	ID                 string               `json:"id"`
	UserID             string               `json:"user_id"`
	Items              []OrderItem          `json:"items"`
	Total              decimal.Decimal      `json:"total"`
	InstallmentPackage *InstallmentPackage  `json:"installment_package,omitempty"`
	PaymentSchedule    []InstallmentPayment `json:"payment_schedule,omitempty"`
	Status             string               `json:"status"`
	ShippingAddress    string               `json:"shipping_address"`
	CreatedAt          time.Time            `json:"created_at"`
}

// DTOs for requests and responses

type CheckoutRequest struct {
	ShippingAddress   string `json:"shipping_address" validate:"required"`
	InstallmentMonths int    `json:"installment_months" validate:"omitempty,oneof=3 6 12"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}

type OrderTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Total    decimal.Decimal `json:"total"`
}
