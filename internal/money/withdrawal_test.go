package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sentra-dev/sentra/internal/model"
)

var testRates = Rates{USDINR: decimal.NewFromInt(88), EURINR: decimal.NewFromInt(92)}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

func TestCalculateWithdrawal_USD1000(t *testing.T) {
	w := CalculateWithdrawal(d("1000"), model.USD, testRates)

	assertDec(t, "1000", w.Amount)
	assert.Equal(t, model.USD, w.Currency)
	assertDec(t, "1", w.BaseFee)
	assertDec(t, "5", w.VariableFee)
	assertDec(t, "6", w.TotalFee)
	assertDec(t, "994", w.NetAmount)
	assertDec(t, "88", w.ExchangeRate)
	assertDec(t, "87472", w.AmountInINR)
}

func TestCalculateWithdrawal_EUR(t *testing.T) {
	w := CalculateWithdrawal(d("250.50"), model.EUR, testRates)

	// fee = 1 + 1.2525, net = 248.2475, inr = 248.2475 * 92
	assertDec(t, "2.2525", w.TotalFee)
	assertDec(t, "248.2475", w.NetAmount)
	assertDec(t, "22838.77", w.AmountInINR)
}

func TestCalculateWithdrawal_Properties(t *testing.T) {
	amounts := []string{"0", "0.01", "10", "99.99", "1234.567", "1000000"}
	for _, cur := range []model.Currency{model.USD, model.EUR} {
		for _, a := range amounts {
			amount := d(a)
			w := CalculateWithdrawal(amount, cur, testRates)

			wantFee := d("1").Add(amount.Mul(d("0.005")))
			wantNet := amount.Sub(wantFee)
			wantINR := wantNet.Mul(testRates.MustFor(cur))

			assertDec(t, wantFee.String(), w.TotalFee, a, cur)
			assertDec(t, wantNet.String(), w.NetAmount, a, cur)
			assertDec(t, wantINR.String(), w.AmountInINR, a, cur)
			assert.True(t, w.TotalFee.Equal(w.BaseFee.Add(w.VariableFee)))
		}
	}
}

func TestCalculateWithdrawal_NoValidation(t *testing.T) {
	assert.NotPanics(t, func() {
		w := CalculateWithdrawal(d("-50"), model.USD, testRates)
		assertDec(t, "0.75", w.TotalFee)
		assertDec(t, "-50.75", w.NetAmount)
		assertDec(t, "-4466", w.AmountInINR)
	})

	w := CalculateWithdrawal(decimal.Zero, model.USD, testRates)
	assertDec(t, "1", w.TotalFee)
	assertDec(t, "-1", w.NetAmount)
}

func TestCalculateWithdrawal_NoRounding(t *testing.T) {
	w := CalculateWithdrawal(d("10.01"), model.USD, testRates)
	// 0.005 * 10.01 = 0.05005; rounding to cents would lose the tail.
	assertDec(t, "0.05005", w.VariableFee)
	assertDec(t, "8.95995", w.NetAmount)
}

func TestCalculateWithdrawal_UnsupportedCurrencyPanics(t *testing.T) {
	assert.Panics(t, func() {
		CalculateWithdrawal(d("10"), model.INR, testRates)
	})
}

func TestCalculatorCustomFees(t *testing.T) {
	c := NewCalculator(FeeSchedule{BaseFee: d("0.5"), VariableRate: d("0.01")}, testRates)
	w := c.Withdrawal(d("100"), model.USD)
	assertDec(t, "1.5", w.TotalFee)
	assertDec(t, "98.5", w.NetAmount)
	assertDec(t, "8668", w.AmountInINR)
}

func TestPortfolioValue(t *testing.T) {
	accounts := []model.VirtualAccount{
		{Currency: model.USD, Balance: d("12450")},
		{Currency: model.EUR, Balance: d("8320")},
		{Currency: model.INR, Balance: d("999")},
	}
	// 12450*88 + 8320*92
	assertDec(t, "1861040", PortfolioValue(accounts, testRates))
	assertDec(t, "0", PortfolioValue(nil, testRates))
}
