package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sentra-dev/sentra/internal/activity"
	"github.com/sentra-dev/sentra/internal/format"
)

// PaymentRequest asks a payer to send money to a virtual account.
type PaymentRequest struct {
	AccountID string
	Email     string
	Amount    string // optional
	Note      string
}

// Validate reports the first problem with the request, in the order the
// payer would fix them.
func (r PaymentRequest) Validate() error {
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return ValidationErrors{{Field: "email", Message: "Please enter an email address"}}
	}
	if !format.ValidEmail(email) {
		return ValidationErrors{{Field: "email", Message: "Enter a valid email address"}}
	}
	if amt := strings.TrimSpace(r.Amount); amt != "" {
		v, err := decimal.NewFromString(amt)
		if err != nil {
			return ValidationErrors{{Field: "amount", Message: "Enter a valid amount"}}
		}
		if !v.IsPositive() {
			return ValidationErrors{{Field: "amount", Message: "Amount should be greater than zero"}}
		}
	}
	return nil
}

// RequestPayment sends the account details of r.AccountID to the payer.
// Nothing is recorded in the state.
func (s *Service) RequestPayment(ctx context.Context, r PaymentRequest) error {
	if err := r.Validate(); err != nil {
		return err
	}
	acct, err := s.store.VirtualAccount(r.AccountID)
	if err != nil {
		return fmt.Errorf("requesting payment: %w", err)
	}
	if err := s.latency.Wait(ctx, StepRequest); err != nil {
		return fmt.Errorf("requesting payment: %w", err)
	}

	s.log.Info("payment request sent", s.log.Args(
		"account", acct.ID,
		"currency", string(acct.Currency),
		"to", strings.TrimSpace(r.Email),
	))
	s.record(activity.ActionPaymentRequested, fmt.Sprintf("%s details sent to %s", acct.Currency, strings.TrimSpace(r.Email)), acct.ID)
	return nil
}
