package wallet

import (
	"strings"

	"github.com/sentra-dev/sentra/internal/model"
)

// All disables a status or type filter.
const All = "all"

// Filter narrows a transaction list.
type Filter struct {
	Search string // matched against description and id, ignoring case
	Status string // a TransactionStatus, or "all"/""
	Type   string // a TransactionType, or "all"/""
}

// FilterTransactions returns the transactions matching f, in their
// original order.
func FilterTransactions(txns []model.Transaction, f Filter) []model.Transaction {
	query := strings.ToLower(f.Search)
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Description), query) &&
			!strings.Contains(strings.ToLower(t.ID), query) {
			continue
		}
		if !matches(f.Status, string(t.Status)) || !matches(f.Type, string(t.Type)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func matches(want, got string) bool {
	return want == "" || want == All || want == got
}
