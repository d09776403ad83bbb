// Package demo holds the reference tables and the canned demo session used
// to seed a store without going through onboarding.
package demo

import (
	"github.com/shopspring/decimal"

	"github.com/sentra-dev/sentra/internal/model"
	"github.com/sentra-dev/sentra/internal/money"
)

// ReferenceProvider is the key of the product's own entry in Providers.
const ReferenceProvider = "sentra"

// MinWithdrawal is the smallest amount accepted by the withdrawal flow.
var MinWithdrawal = decimal.NewFromInt(10)

// ExchangeRates returns the prototype INR rates.
func ExchangeRates() money.Rates {
	return money.Rates{
		USDINR: decimal.NewFromInt(88),
		EURINR: decimal.NewFromInt(92),
	}
}

// BankOption is a supported destination bank.
type BankOption struct {
	Name string
	Code string
}

// IndianBanks lists the banks offered when linking a local account.
func IndianBanks() []BankOption {
	return []BankOption{
		{Name: "State Bank of India", Code: "SBI"},
		{Name: "HDFC Bank", Code: "HDFC"},
		{Name: "ICICI Bank", Code: "ICICI"},
		{Name: "Axis Bank", Code: "AXIS"},
		{Name: "Punjab National Bank", Code: "PNB"},
		{Name: "Bank of Baroda", Code: "BOB"},
		{Name: "Kotak Mahindra Bank", Code: "KOTAK"},
		{Name: "Yes Bank", Code: "YES"},
		{Name: "IndusInd Bank", Code: "INDUSIND"},
		{Name: "Union Bank of India", Code: "UNION"},
		{Name: "Canara Bank", Code: "CANARA"},
		{Name: "Bank of India", Code: "BOI"},
		{Name: "Indian Bank", Code: "INDIAN"},
		{Name: "Central Bank of India", Code: "CENTRAL"},
		{Name: "IDBI Bank", Code: "IDBI"},
	}
}

// IsSupportedBank reports whether name is one of IndianBanks.
func IsSupportedBank(name string) bool {
	for _, b := range IndianBanks() {
		if b.Name == name {
			return true
		}
	}
	return false
}

// CountryOption is a residence country users can onboard from.
type CountryOption struct {
	Code     model.Country
	Name     string
	Currency model.Currency
}

// SupportedCountries lists the countries open for onboarding.
func SupportedCountries() []CountryOption {
	return []CountryOption{
		{Code: model.CountryIN, Name: "India", Currency: model.INR},
	}
}

// Providers returns the product followed by hypothetical competitors, in
// display order, with rates and fees used by the comparison table.
func Providers(rates money.Rates, fees money.FeeSchedule) []money.Provider {
	return []money.Provider{
		{Key: ReferenceProvider, Name: "Sentra", Fees: fees, Rates: rates},
		{
			Key:   "wise",
			Name:  "Wise",
			Fees:  schedule("0.50", "0.005"),
			Rates: money.Rates{USDINR: dec("86.5"), EURINR: dec("90.5")},
		},
		{
			Key:   "paypal",
			Name:  "PayPal",
			Fees:  schedule("0.30", "0.029"),
			Rates: money.Rates{USDINR: dec("85.2"), EURINR: dec("89.2")},
		},
		{
			Key:   "westernUnion",
			Name:  "Western Union",
			Fees:  schedule("5.00", "0.02"),
			Rates: money.Rates{USDINR: dec("84.8"), EURINR: dec("88.5")},
		},
	}
}

func schedule(base, rate string) money.FeeSchedule {
	return money.FeeSchedule{BaseFee: dec(base), VariableRate: dec(rate)}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
