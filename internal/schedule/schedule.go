// Package schedule builds installment payment schedules and computes order
// totals. A schedule is a flat amortization: one recurring amount derived from
// total-plus-interest divided by the month count, never a declining balance.
package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/easyqist/storefront/internal/domain"
	"github.com/easyqist/storefront/pkg/apperr"
)

var supportedMonths = map[int]bool{3: true, 6: true, 12: true}

// IsSupportedDuration reports whether a package duration is one the store offers.
func IsSupportedDuration(months int) bool {
	return supportedMonths[months]
}

// Build generates the payment schedule for an order total and an installment
// package, anchored at the order creation time. The first payment falls due one
// calendar month after the anchor, each subsequent payment one month later.
//
// Every installment is rounded to 2 decimal places; the last installment
// absorbs the rounding remainder so the schedule sums exactly to the rounded
// total-with-interest. The recurring amount rounds down, never up, so the
// absorbed remainder cannot go negative even when the total divides to less
// than a cent per month.
func Build(total decimal.Decimal, pkg domain.InstallmentPackage, anchor time.Time) ([]domain.InstallmentPayment, error) {
	if !IsSupportedDuration(pkg.Months) {
		return nil, apperr.WrapUnsupportedPackage(pkg.Months)
	}

	totalWithInterest := TotalWithInterest(total, pkg.InterestRate).Round(2)
	months := decimal.NewFromInt(int64(pkg.Months))
	monthly := totalWithInterest.Div(months).RoundDown(2)
	last := totalWithInterest.Sub(monthly.Mul(months.Sub(decimal.NewFromInt(1))))

	payments := make([]domain.InstallmentPayment, 0, pkg.Months)
	for i := 0; i < pkg.Months; i++ {
		amount := monthly
		if i == pkg.Months-1 {
			amount = last
		}

		payments = append(payments, domain.InstallmentPayment{
			PaymentNumber: i + 1,
			Amount:        amount,
			DueDate:       AddMonths(anchor, i+1),
			Status:        domain.PaymentStatusPending,
		})
	}

	return payments, nil
}

// TotalWithInterest applies a flat interest percentage to an order total.
func TotalWithInterest(total decimal.Decimal, ratePercent decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return total.Mul(hundred.Add(ratePercent)).Div(hundred)
}

// AddMonths advances a timestamp by whole calendar months, clamping the day of
// month to the last valid day of the target month (Jan 31 + 1 month = Feb 28,
// or Feb 29 in a leap year). Year boundaries roll over normally.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	m := int(month) - 1 + months
	year += m / 12
	m = m % 12
	if m < 0 {
		m += 12
		year--
	}
	targetMonth := time.Month(m + 1)

	if last := daysIn(year, targetMonth); day > last {
		day = last
	}

	hour, min, sec := t.Clock()
	return time.Date(year, targetMonth, day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EffectiveStatus derives the read-time status of a payment. A pending entry
// whose due date has passed reads as overdue; nothing is written back, so the
// status stays correct as the clock advances without a mutation.
func EffectiveStatus(p domain.InstallmentPayment, now time.Time) string {
	if p.Status == domain.PaymentStatusPending && now.After(p.DueDate) {
		return domain.PaymentStatusOverdue
	}
	return p.Status
}

// ApplyEffectiveStatus returns a copy of the schedule with derived statuses
// filled in for presentation.
func ApplyEffectiveStatus(payments []domain.InstallmentPayment, now time.Time) []domain.InstallmentPayment {
	out := make([]domain.InstallmentPayment, len(payments))
	copy(out, payments)
	for i := range out {
		out[i].Status = EffectiveStatus(out[i], now)
	}
	return out
}
