package format

import (
	"strings"

	"github.com/atotto/clipboard"

	"github.com/sentra-dev/sentra/internal/model"
)

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// CopyToClipboard writes text to the system clipboard and reports success.
// It never panics; a missing clipboard utility simply yields false.
func CopyToClipboard(text string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return writeClipboard(text) == nil
}

// VirtualAccountDetails renders the shareable receiving details of a.
func VirtualAccountDetails(a model.VirtualAccount) string {
	lines := []string{
		"Account Holder: " + a.AccountHolderName,
		"Bank: " + a.BankName,
		"Account Number: " + a.AccountNumber,
	}
	if a.RoutingNumber != "" {
		lines = append(lines, "Routing Number: "+a.RoutingNumber)
	}
	if a.IBAN != "" {
		lines = append(lines, "IBAN: "+a.IBAN)
	}
	lines = append(lines, "SWIFT/BIC: "+a.SwiftBIC)
	return strings.Join(lines, "\n")
}
