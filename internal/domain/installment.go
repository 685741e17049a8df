package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business logic constants
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
)

// InstallmentPackage is a selectable payment plan: a duration in months and a
// flat interest percentage. Packages are a fixed enumerated set; customers pick
// one at checkout or none at all.
type InstallmentPackage struct {
	Months       int             `json:"months"`
	Label        string          `json:"label"`
	InterestRate decimal.Decimal `json:"interest_rate"`
}

// InstallmentPayment is one entry of an order's payment schedule. Status only
// ever advances pending -> paid; overdue is derived from the due date at read
// time and never written back.
type InstallmentPayment struct {
	PaymentNumber int             `json:"payment_number"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"due_date"`
	Status        string          `json:"status"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}
