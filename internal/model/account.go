package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is an ISO currency code handled by the product.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	INR Currency = "INR"
)

// Valid reports whether c is a known currency.
func (c Currency) Valid() bool {
	switch c {
	case USD, EUR, INR:
		return true
	}
	return false
}

// VirtualAccount is a foreign-currency receiving account.
// RoutingNumber is set for USD accounts, IBAN for EUR accounts.
type VirtualAccount struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId"`
	Currency          Currency        `json:"currency"`
	Balance           decimal.Decimal `json:"balance"`
	AccountNumber     string          `json:"accountNumber"`
	RoutingNumber     string          `json:"routingNumber,omitempty"`
	IBAN              string          `json:"iban,omitempty"`
	BankName          string          `json:"bankName"`
	SwiftBIC          string          `json:"swiftBic"`
	AccountHolderName string          `json:"accountHolderName"`
}

// BankAccountType distinguishes local account products.
type BankAccountType string

const (
	Savings BankAccountType = "savings"
	Current BankAccountType = "current"
)

// LocalBankAccount is a home-country withdrawal destination.
type LocalBankAccount struct {
	ID                string          `json:"id"`
	UserID            string          `json:"userId"`
	BankName          string          `json:"bankName"`
	BankLogo          string          `json:"bankLogo,omitempty"`
	AccountNumber     string          `json:"accountNumber"`
	IFSCCode          string          `json:"ifscCode"`
	AccountHolderName string          `json:"accountHolderName"`
	AccountType       BankAccountType `json:"accountType"`
	IsDefault         bool            `json:"isDefault"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// NewBankAccount holds the caller-supplied fields of a LocalBankAccount.
// ID, UserID and CreatedAt are assigned by the store.
type NewBankAccount struct {
	BankName          string
	BankLogo          string
	AccountNumber     string
	IFSCCode          string
	AccountHolderName string
	AccountType       BankAccountType
	IsDefault         bool
}
