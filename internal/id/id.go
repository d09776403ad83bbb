// Package id generates entity identifiers and human-facing references.
package id

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entity id prefixes.
const (
	PrefixBankAccount    = "lba"
	PrefixTransaction    = "txn"
	PrefixVirtualAccount = "va"
	PrefixUser           = "user"
)

// Generator produces a fresh, unique id for the given prefix.
type Generator func(prefix string) string

// New returns an id like "txn-0b5e4c1e-...". Ids never repeat.
func New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Prefix returns the part of an id before the first dash.
// "lba-1234" -> "lba"
func Prefix(id string) string {
	before, _, found := strings.Cut(id, "-")
	if !found {
		return ""
	}
	return before
}

// Reference returns a short uppercase receipt reference such as
// "TXNMJ3Q0ZK1AB4C9Z": the creation time in base 36 followed by six random
// base-36 characters.
func Reference(now time.Time) string {
	u := uuid.New()
	random := strconv.FormatUint(binary.BigEndian.Uint64(u[8:])|1<<63, 36)
	stamp := strconv.FormatInt(now.UnixMilli(), 36)
	return "TXN" + strings.ToUpper(stamp+random[:6])
}
