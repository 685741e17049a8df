package schedule

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/easyqist/storefront/internal/domain"
)

func TestComputeTotals(t *testing.T) {
	threshold := decimal.NewFromInt(100)
	fee := decimal.NewFromInt(10)

	tests := []struct {
		name             string
		items            []domain.OrderItem
		expectedSubtotal decimal.Decimal
		expectedShipping decimal.Decimal
		expectedTotal    decimal.Decimal
	}{
		{
			name: "below free-shipping threshold",
			items: []domain.OrderItem{
				{Price: decimal.NewFromInt(25), Quantity: 2},
			},
			expectedSubtotal: decimal.NewFromInt(50),
			expectedShipping: decimal.NewFromInt(10),
			expectedTotal:    decimal.NewFromInt(60),
		},
		{
			name: "above free-shipping threshold",
			items: []domain.OrderItem{
				{Price: decimal.NewFromInt(75), Quantity: 2},
			},
			expectedSubtotal: decimal.NewFromInt(150),
			expectedShipping: decimal.Zero,
			expectedTotal:    decimal.NewFromInt(150),
		},
		{
			name: "exactly at threshold still pays shipping",
			items: []domain.OrderItem{
				{Price: decimal.NewFromInt(100), Quantity: 1},
			},
			expectedSubtotal: decimal.NewFromInt(100),
			expectedShipping: decimal.NewFromInt(10),
			expectedTotal:    decimal.NewFromInt(110),
		},
		{
			name: "multiple lines",
			items: []domain.OrderItem{
				{Price: decimal.NewFromFloat(299.99), Quantity: 1},
				{Price: decimal.NewFromFloat(49.99), Quantity: 3},
			},
			expectedSubtotal: decimal.NewFromFloat(449.96),
			expectedShipping: decimal.Zero,
			expectedTotal:    decimal.NewFromFloat(449.96),
		},
		{
			name:             "empty cart",
			items:            nil,
			expectedSubtotal: decimal.Zero,
			expectedShipping: decimal.NewFromInt(10),
			expectedTotal:    decimal.NewFromInt(10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.items, threshold, fee)
			assert.True(t, totals.Subtotal.Equal(tt.expectedSubtotal), "subtotal: expected %v, got %v", tt.expectedSubtotal, totals.Subtotal)
			assert.True(t, totals.Shipping.Equal(tt.expectedShipping), "shipping: expected %v, got %v", tt.expectedShipping, totals.Shipping)
			assert.True(t, totals.Total.Equal(tt.expectedTotal), "total: expected %v, got %v", tt.expectedTotal, totals.Total)
		})
	}
}
