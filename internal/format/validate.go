package format

import (
	"regexp"
	"strings"
)

var (
	ifscRe    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	accountRe = regexp.MustCompile(`^\d{9,18}$`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidIFSC reports whether code is an IFSC: four letters, a literal zero
// and six alphanumerics. Case is ignored.
func ValidIFSC(code string) bool {
	return ifscRe.MatchString(strings.ToUpper(code))
}

// ValidAccountNumber reports whether number is 9 to 18 ASCII digits.
func ValidAccountNumber(number string) bool {
	return accountRe.MatchString(number)
}

// ValidEmail reports whether email looks like local@domain.tld after trimming.
func ValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}
