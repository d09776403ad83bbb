package money

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sentra-dev/sentra/internal/model"
)

// Provider is a remittance provider with its own fees and rates.
type Provider struct {
	Key   string
	Name  string
	Fees  FeeSchedule
	Rates Rates
}

// Comparison is one provider's outcome for a hypothetical transfer.
type Comparison struct {
	Key         string
	Provider    string
	Rate        decimal.Decimal
	Fee         decimal.Decimal
	NetAmount   decimal.Decimal
	AmountInINR decimal.Decimal
	// Savings is reference.AmountInINR - AmountInINR. It is negative when
	// this provider beats the reference.
	Savings decimal.Decimal
}

// Compare quotes amount with every provider and ranks the results by
// descending AmountInINR, keeping input order on ties. Savings are relative
// to the provider keyed by reference; a missing reference counts as zero.
// A non-positive amount yields no results.
func Compare(amount decimal.Decimal, currency model.Currency, providers []Provider, reference string) []Comparison {
	if !amount.IsPositive() {
		return nil
	}

	results := make([]Comparison, 0, len(providers))
	refAmount := decimal.Zero
	for _, p := range providers {
		w := NewCalculator(p.Fees, p.Rates).Withdrawal(amount, currency)
		results = append(results, Comparison{
			Key:         p.Key,
			Provider:    p.Name,
			Rate:        w.ExchangeRate,
			Fee:         w.TotalFee,
			NetAmount:   w.NetAmount,
			AmountInINR: w.AmountInINR,
		})
		if p.Key == reference {
			refAmount = w.AmountInINR
		}
	}

	for i := range results {
		results[i].Savings = refAmount.Sub(results[i].AmountInINR)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AmountInINR.GreaterThan(results[j].AmountInINR)
	})
	return results
}

// BestAlternative returns the highest ranked result that is not the
// reference, together with how much more the reference delivers than it.
func BestAlternative(results []Comparison, reference string) (Comparison, decimal.Decimal, bool) {
	var ref *Comparison
	for i := range results {
		if results[i].Key == reference {
			ref = &results[i]
			break
		}
	}
	for _, r := range results {
		if r.Key == reference {
			continue
		}
		if ref == nil {
			return r, decimal.Zero, true
		}
		return r, ref.AmountInINR.Sub(r.AmountInINR), true
	}
	return Comparison{}, decimal.Zero, false
}
