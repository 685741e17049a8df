package schedule

import (
	"github.com/shopspring/decimal"

	"github.com/easyqist/storefront/internal/domain"
)

// ComputeTotals derives the order total from an item snapshot. Shipping is a
// flat fee waived once the subtotal exceeds the free-shipping threshold; the
// returned total is the base the schedule builder applies interest to.
func ComputeTotals(items []domain.OrderItem, freeShippingThreshold, shippingFee decimal.Decimal) domain.OrderTotals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	shipping := shippingFee
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}

	return domain.OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}
}
