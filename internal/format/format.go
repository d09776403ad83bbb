// Package format renders money, dates and account identifiers for display
// and validates user-entered banking identifiers.
package format

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/sentra-dev/sentra/internal/model"
)

var symbols = map[model.Currency]string{
	model.USD: "$",
	model.EUR: "€",
	model.INR: "₹",
}

// Symbol returns the display symbol for c, or the code itself when unknown.
func Symbol(c model.Currency) string {
	if s, ok := symbols[c]; ok {
		return s
	}
	return string(c)
}

// Currency renders amount with its symbol, thousands separators and exactly
// two decimals, e.g. "$1,234.50". This is the only place money is rounded.
func Currency(amount decimal.Decimal, c model.Currency) string {
	return Symbol(c) + Amount(amount)
}

// Amount renders amount with thousands separators and two decimals.
// Negative values keep their sign even when they round to zero ("-0.00").
func Amount(amount decimal.Decimal) string {
	fixed := amount.Abs().Round(2)
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}

	s := fixed.StringFixed(2)
	frac := s[strings.IndexByte(s, '.'):]
	return sign + humanize.BigComma(fixed.BigInt()) + frac
}

const (
	dateLayout     = "Jan 2, 2006"
	dateTimeLayout = "Jan 2, 2006, 03:04 PM"
)

// Date renders t as "Dec 10, 2025".
func Date(t time.Time) string {
	return t.Format(dateLayout)
}

// DateTime renders t as "Dec 10, 2025, 02:30 PM".
func DateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}

// DateString parses an RFC 3339 timestamp or a plain YYYY-MM-DD date and
// renders it with Date.
func DateString(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		if t, err = time.Parse(time.DateOnly, iso); err != nil {
			return "Invalid Date"
		}
	}
	return Date(t)
}

// MaskAccountNumber hides all but the last four characters.
// Values of four characters or fewer are returned unchanged.
func MaskAccountNumber(acct string) string {
	r := []rune(acct)
	if len(r) <= 4 {
		return acct
	}
	return "****" + string(r[len(r)-4:])
}
