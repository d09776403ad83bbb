package money

import (
	"github.com/shopspring/decimal"

	"github.com/sentra-dev/sentra/internal/model"
)

// Withdrawal is the full breakdown of converting amount of Currency to INR.
type Withdrawal struct {
	Amount       decimal.Decimal
	Currency     model.Currency
	BaseFee      decimal.Decimal
	VariableFee  decimal.Decimal
	TotalFee     decimal.Decimal
	NetAmount    decimal.Decimal
	ExchangeRate decimal.Decimal
	AmountInINR  decimal.Decimal
}

// Calculator quotes withdrawals against a fee schedule and rate table.
type Calculator struct {
	Fees  FeeSchedule
	Rates Rates
}

// NewCalculator returns a Calculator using fees and rates.
func NewCalculator(fees FeeSchedule, rates Rates) Calculator {
	return Calculator{Fees: fees, Rates: rates}
}

// Withdrawal computes the breakdown for amount. It performs no validation:
// zero or negative amounts produce correspondingly negative results.
// It panics if currency has no rate.
func (c Calculator) Withdrawal(amount decimal.Decimal, currency model.Currency) Withdrawal {
	rate := c.Rates.MustFor(currency)
	variable := c.Fees.Variable(amount)
	total := c.Fees.BaseFee.Add(variable)
	net := amount.Sub(total)

	return Withdrawal{
		Amount:       amount,
		Currency:     currency,
		BaseFee:      c.Fees.BaseFee,
		VariableFee:  variable,
		TotalFee:     total,
		NetAmount:    net,
		ExchangeRate: rate,
		AmountInINR:  net.Mul(rate),
	}
}

// CalculateWithdrawal quotes amount with DefaultFees.
func CalculateWithdrawal(amount decimal.Decimal, currency model.Currency, rates Rates) Withdrawal {
	return NewCalculator(DefaultFees, rates).Withdrawal(amount, currency)
}

// PortfolioValue converts every virtual balance to INR and sums them.
// Accounts in currencies without a rate are skipped.
func PortfolioValue(accounts []model.VirtualAccount, rates Rates) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		rate, ok := rates.For(a.Currency)
		if !ok {
			continue
		}
		total = total.Add(a.Balance.Mul(rate))
	}
	return total
}
