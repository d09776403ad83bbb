// Package money implements the withdrawal fee and currency conversion math.
// All arithmetic is exact decimal arithmetic; rounding happens only when a
// value is formatted for display.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sentra-dev/sentra/internal/model"
)

// FeeSchedule is a flat-plus-percentage fee: BaseFee + amount*VariableRate.
type FeeSchedule struct {
	BaseFee      decimal.Decimal
	VariableRate decimal.Decimal
}

// DefaultFees is the product's own schedule: 1 unit plus 0.5%.
var DefaultFees = FeeSchedule{
	BaseFee:      decimal.NewFromInt(1),
	VariableRate: decimal.RequireFromString("0.005"),
}

// Variable returns the percentage component of the fee for amount.
func (f FeeSchedule) Variable(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(f.VariableRate)
}

// Total returns the full fee charged on amount.
func (f FeeSchedule) Total(amount decimal.Decimal) decimal.Decimal {
	return f.BaseFee.Add(f.Variable(amount))
}

// Rates holds INR conversion rates for the supported source currencies.
type Rates struct {
	USDINR decimal.Decimal
	EURINR decimal.Decimal
}

// For returns the INR rate for currency c.
func (r Rates) For(c model.Currency) (decimal.Decimal, bool) {
	switch c {
	case model.USD:
		return r.USDINR, true
	case model.EUR:
		return r.EURINR, true
	}
	return decimal.Zero, false
}

// MustFor is like For but panics on a currency without a rate.
func (r Rates) MustFor(c model.Currency) decimal.Decimal {
	rate, ok := r.For(c)
	if !ok {
		panic(fmt.Sprintf("money: no INR rate for currency %q", c))
	}
	return rate
}
