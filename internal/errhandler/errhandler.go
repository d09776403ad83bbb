// Package errhandler turns command errors into terminal output and an exit
// code.
package errhandler

import (
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/pterm/pterm"

	"github.com/sentra-dev/sentra/internal/wallet"
)

// Handle prints err to w and returns the process exit code. A prompt
// interrupted with Ctrl-C is a cancellation, not a failure.
func Handle(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, terminal.InterruptErr) {
		pterm.Warning.WithWriter(w).Println("Operation cancelled")
		return 0
	}

	var verrs wallet.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			pterm.Error.WithWriter(w).Println(e.Message)
		}
		return 1
	}

	pterm.Error.WithWriter(w).Println(capitalize(err.Error()))
	return 1
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return strings.TrimSpace(string(r))
}
