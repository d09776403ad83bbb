package state

import (
	"errors"
	"fmt"
	"time"

	"github.com/sentra-dev/sentra/internal/model"
	"github.com/sentra-dev/sentra/internal/storage"
)

var errBroken = errors.New("storage unavailable")

// brokenKV fails every operation selected by its flags.
type brokenKV struct {
	storage.KV
	failGet, failSet, failRemove bool
}

func (b *brokenKV) Get(key string) (string, bool, error) {
	if b.failGet {
		return "", false, errBroken
	}
	return b.KV.Get(key)
}

func (b *brokenKV) Set(key, value string) error {
	if b.failSet {
		return errBroken
	}
	return b.KV.Set(key, value)
}

func (b *brokenKV) Remove(key string) error {
	if b.failRemove {
		return errBroken
	}
	return b.KV.Remove(key)
}

// stepClock returns a clock that advances one minute per call.
func stepClock() func() time.Time {
	t := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func seqIDs() func(string) string {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%03d", prefix, n)
	}
}

func testUser() model.User {
	return model.User{
		ID:        "user-new",
		FullName:  "Asha Rao",
		Email:     "asha@example.com",
		Country:   model.CountryIN,
		KYCStatus: model.KYCVerified,
		CreatedAt: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func newTestStore(kv storage.KV, opts ...Option) *Store {
	base := []Option{WithClock(stepClock()), WithIDs(seqIDs())}
	return New(kv, append(base, opts...)...)
}

func hdfc(isDefault bool) model.NewBankAccount {
	return model.NewBankAccount{
		BankName:          "HDFC Bank",
		AccountNumber:     "50100123456789",
		IFSCCode:          "HDFC0001234",
		AccountHolderName: "Asha Rao",
		AccountType:       model.Savings,
		IsDefault:         isDefault,
	}
}
