package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sentra-dev/sentra/internal/activity"
	"github.com/sentra-dev/sentra/internal/format"
	"github.com/sentra-dev/sentra/internal/id"
	"github.com/sentra-dev/sentra/internal/model"
	"github.com/sentra-dev/sentra/internal/money"
)

// WithdrawalRequest is the raw input of the withdrawal wizard.
type WithdrawalRequest struct {
	SourceID      string // virtual account
	DestinationID string // local bank account
	Amount        string
}

// Quote is a validated withdrawal ready for confirmation.
type Quote struct {
	Source      model.VirtualAccount
	Destination model.LocalBankAccount
	Amount      decimal.Decimal
	Details     money.Withdrawal
}

// Receipt describes a submitted withdrawal.
type Receipt struct {
	Transaction model.Transaction
	Reference   string
	Quote       Quote
}

// QuoteWithdrawal validates req against the current state and prices it.
func (s *Service) QuoteWithdrawal(req WithdrawalRequest) (Quote, error) {
	var (
		errs ValidationErrors
		q    Quote
	)

	src, err := s.store.VirtualAccount(req.SourceID)
	if err != nil {
		errs.addErr("source", "Select an account to withdraw from", err)
	}
	q.Source = src

	dst, err := s.store.BankAccount(req.DestinationID)
	if err != nil {
		errs.addErr("destination", "Select a bank account to withdraw to", err)
	}
	q.Destination = dst

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil {
		errs.add("amount", "Please enter a valid amount")
		return Quote{}, errs
	}
	q.Amount = amount

	if src.ID != "" {
		if _, ok := s.calc.Rates.For(src.Currency); !ok {
			errs.add("source", fmt.Sprintf("%s cannot be withdrawn to INR", src.Currency))
			return Quote{}, errs
		}
		switch {
		case amount.LessThan(s.minWithdrawal):
			errs.addErr("amount", "Minimum withdrawal is "+format.Currency(s.minWithdrawal, src.Currency), ErrBelowMinimum)
		case amount.GreaterThan(src.Balance):
			errs.addErr("amount", "Insufficient balance", ErrInsufficientBalance)
		}
	}
	if err := errs.err(); err != nil {
		return Quote{}, err
	}

	q.Details = s.calc.Withdrawal(amount, src.Currency)
	return q, nil
}

// Withdraw confirms a withdrawal: it records a pending transaction to the
// destination bank and debits the gross amount from the source account.
func (s *Service) Withdraw(ctx context.Context, req WithdrawalRequest) (Receipt, error) {
	q, err := s.QuoteWithdrawal(req)
	if err != nil {
		return Receipt{}, err
	}
	if err := s.latency.Wait(ctx, StepWithdrawal); err != nil {
		return Receipt{}, fmt.Errorf("submitting withdrawal: %w", err)
	}

	// The balance may have moved while waiting.
	src, err := s.store.VirtualAccount(q.Source.ID)
	if err != nil {
		return Receipt{}, fmt.Errorf("submitting withdrawal: %w", err)
	}
	if q.Amount.GreaterThan(src.Balance) {
		return Receipt{}, ValidationErrors{{Field: "amount", Message: "Insufficient balance", Err: ErrInsufficientBalance}}
	}

	txn, err := s.store.AddTransaction(model.NewTransaction{
		Type:                 model.TypeWithdrawal,
		SourceAccountID:      src.ID,
		DestinationAccountID: q.Destination.ID,
		AmountSource:         q.Amount,
		CurrencySource:       src.Currency,
		AmountDestination:    &q.Details.AmountInINR,
		CurrencyDestination:  model.INR,
		ExchangeRate:         &q.Details.ExchangeRate,
		Fee:                  q.Details.TotalFee,
		Status:               model.StatusPending,
		Description:          "Withdrawal to " + q.Destination.BankName,
	})
	if err != nil {
		return Receipt{}, fmt.Errorf("submitting withdrawal: %w", err)
	}
	s.store.UpdateVirtualAccountBalance(src.ID, src.Balance.Sub(q.Amount))

	ref := id.Reference(s.now())
	s.log.Info("withdrawal submitted", s.log.Args(
		"txn", txn.ID,
		"reference", ref,
		"amount", q.Amount.String(),
		"currency", string(src.Currency),
	))
	s.record(activity.ActionWithdrawal,
		fmt.Sprintf("%s to %s, ref %s", format.Currency(q.Amount, src.Currency), q.Destination.BankName, ref),
		txn.ID)
	return Receipt{Transaction: txn, Reference: ref, Quote: q}, nil
}
