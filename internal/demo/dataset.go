package demo

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sentra-dev/sentra/internal/model"
)

// UserID is the id of the canned demo identity.
const UserID = "user-001"

// User returns the canned demo identity.
func User() model.User {
	return model.User{
		ID:          UserID,
		FullName:    "Sudip S Jamwal",
		Email:       "sudip@sentra.com",
		Phone:       "+91 9876543210",
		DateOfBirth: "1995-06-15",
		Address:     "Bangalore, Karnataka, India",
		Country:     model.CountryIN,
		KYCStatus:   model.KYCVerified,
		CreatedAt:   ts("2025-01-15T10:00:00Z"),
	}
}

// Dataset returns a fresh onboarded session: one user, two virtual
// accounts, two local bank accounts and six transactions (newest first).
func Dataset() model.AppState {
	u := User()
	return model.AppState{
		User:              &u,
		VirtualAccounts:   virtualAccounts(),
		LocalBankAccounts: localBankAccounts(),
		Transactions:      transactions(),
		IsOnboarded:       true,
	}
}

func virtualAccounts() []model.VirtualAccount {
	return []model.VirtualAccount{
		{
			ID:                "va-usd-001",
			UserID:            UserID,
			Currency:          model.USD,
			Balance:           dec("12450.00"),
			AccountNumber:     "8829104756",
			RoutingNumber:     "026009593",
			BankName:          "JPMorgan Chase",
			SwiftBIC:          "CHASUS33",
			AccountHolderName: "Sudip S Jamwal",
		},
		{
			ID:                "va-eur-001",
			UserID:            UserID,
			Currency:          model.EUR,
			Balance:           dec("8320.00"),
			AccountNumber:     "4421098763",
			IBAN:              "DE89370400440532013000",
			BankName:          "Deutsche Bank",
			SwiftBIC:          "DEUTDEFF",
			AccountHolderName: "Sudip S Jamwal",
		},
	}
}

func localBankAccounts() []model.LocalBankAccount {
	return []model.LocalBankAccount{
		{
			ID:                "lba-001",
			UserID:            UserID,
			BankName:          "HDFC Bank",
			AccountNumber:     "50100123456789",
			IFSCCode:          "HDFC0001234",
			AccountHolderName: "Sudip S Jamwal",
			AccountType:       model.Savings,
			IsDefault:         true,
			CreatedAt:         ts("2025-01-20T10:00:00Z"),
		},
		{
			ID:                "lba-002",
			UserID:            UserID,
			BankName:          "State Bank of India",
			AccountNumber:     "30987654321012",
			IFSCCode:          "SBIN0005678",
			AccountHolderName: "Sudip S Jamwal",
			AccountType:       model.Savings,
			CreatedAt:         ts("2025-02-10T10:00:00Z"),
		},
	}
}

func transactions() []model.Transaction {
	return []model.Transaction{
		received("txn-001", "va-usd-001", "2500.00", model.USD, "Client XYZ Corp",
			"2025-12-10T14:30:00Z", "2025-12-10T14:35:00Z"),
		{
			ID:                   "txn-002",
			UserID:               UserID,
			Type:                 model.TypeWithdrawal,
			SourceAccountID:      "va-usd-001",
			DestinationAccountID: "lba-001",
			AmountSource:         dec("1000.00"),
			CurrencySource:       model.USD,
			AmountDestination:    decPtr("87560.00"),
			CurrencyDestination:  model.INR,
			ExchangeRate:         decPtr("88"),
			Fee:                  dec("6.00"),
			Status:               model.StatusCompleted,
			Description:          "HDFC Bank",
			CreatedAt:            ts("2025-12-08T10:15:00Z"),
			CompletedAt:          tsPtr("2025-12-09T09:00:00Z"),
		},
		received("txn-003", "va-usd-001", "850.00", model.USD, "Upwork",
			"2025-12-05T16:45:00Z", "2025-12-05T16:50:00Z"),
		{
			ID:                   "txn-004",
			UserID:               UserID,
			Type:                 model.TypeWithdrawal,
			SourceAccountID:      "va-usd-001",
			DestinationAccountID: "lba-002",
			AmountSource:         dec("500.00"),
			CurrencySource:       model.USD,
			AmountDestination:    decPtr("43736.00"),
			CurrencyDestination:  model.INR,
			ExchangeRate:         decPtr("88"),
			Fee:                  dec("3.50"),
			Status:               model.StatusPending,
			Description:          "State Bank of India",
			CreatedAt:            ts("2025-12-03T11:20:00Z"),
		},
		received("txn-005", "va-eur-001", "1200.00", model.EUR, "Toptal EU",
			"2025-11-28T09:00:00Z", "2025-11-28T09:10:00Z"),
		received("txn-006", "va-eur-001", "3500.00", model.EUR, "Freelance Project",
			"2025-11-20T12:00:00Z", "2025-11-20T12:05:00Z"),
	}
}

func received(txnID, source, amount string, cur model.Currency, desc, created, completed string) model.Transaction {
	return model.Transaction{
		ID:              txnID,
		UserID:          UserID,
		Type:            model.TypeReceived,
		SourceAccountID: source,
		AmountSource:    dec(amount),
		CurrencySource:  cur,
		Fee:             decimal.Zero,
		Status:          model.StatusCompleted,
		Description:     desc,
		CreatedAt:       ts(created),
		CompletedAt:     tsPtr(completed),
	}
}

func decPtr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsPtr(s string) *time.Time {
	t := ts(s)
	return &t
}
