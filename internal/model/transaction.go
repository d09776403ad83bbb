package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a money movement.
type TransactionType string

const (
	TypeReceived   TransactionType = "received"
	TypeWithdrawal TransactionType = "withdrawal"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Valid reports whether s is a known status.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Transaction records a single money movement. Destination fields are only
// populated for withdrawals. CompletedAt is non-nil iff Status is completed.
type Transaction struct {
	ID                   string            `json:"id"`
	UserID               string            `json:"userId"`
	Type                 TransactionType   `json:"type"`
	SourceAccountID      string            `json:"sourceAccountId"`
	DestinationAccountID string            `json:"destinationAccountId,omitempty"`
	AmountSource         decimal.Decimal   `json:"amountSource"`
	CurrencySource       Currency          `json:"currencySource"`
	AmountDestination    *decimal.Decimal  `json:"amountDestination,omitempty"`
	CurrencyDestination  Currency          `json:"currencyDestination,omitempty"`
	ExchangeRate         *decimal.Decimal  `json:"exchangeRate,omitempty"`
	Fee                  decimal.Decimal   `json:"fee"`
	Status               TransactionStatus `json:"status"`
	Description          string            `json:"description"`
	CreatedAt            time.Time         `json:"createdAt"`
	CompletedAt          *time.Time        `json:"completedAt,omitempty"`
}

// NewTransaction holds the caller-supplied fields of a Transaction.
// ID, UserID and CreatedAt are assigned by the store.
type NewTransaction struct {
	Type                 TransactionType
	SourceAccountID      string
	DestinationAccountID string
	AmountSource         decimal.Decimal
	CurrencySource       Currency
	AmountDestination    *decimal.Decimal
	CurrencyDestination  Currency
	ExchangeRate         *decimal.Decimal
	Fee                  decimal.Decimal
	Status               TransactionStatus
	Description          string
	CompletedAt          *time.Time
}

func (t Transaction) clone() Transaction {
	if t.AmountDestination != nil {
		v := *t.AmountDestination
		t.AmountDestination = &v
	}
	if t.ExchangeRate != nil {
		v := *t.ExchangeRate
		t.ExchangeRate = &v
	}
	if t.CompletedAt != nil {
		v := *t.CompletedAt
		t.CompletedAt = &v
	}
	return t
}
