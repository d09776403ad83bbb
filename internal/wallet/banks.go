package wallet

import (
	"fmt"
	"strings"

	"github.com/sentra-dev/sentra/internal/activity"
	"github.com/sentra-dev/sentra/internal/demo"
	"github.com/sentra-dev/sentra/internal/format"
	"github.com/sentra-dev/sentra/internal/model"
)

// BankAccountForm is the input for linking an Indian bank account.
type BankAccountForm struct {
	BankName             string
	AccountNumber        string
	ConfirmAccountNumber string
	IFSCCode             string
	AccountHolderName    string
	AccountType          model.BankAccountType
}

// Validate reports every problem with the form.
func (f BankAccountForm) Validate() error {
	var errs ValidationErrors

	switch {
	case f.BankName == "":
		errs.add("bankName", "Please select a bank")
	case !demo.IsSupportedBank(f.BankName):
		errs.add("bankName", fmt.Sprintf("%s is not a supported bank", f.BankName))
	}

	switch {
	case f.AccountNumber == "":
		errs.add("accountNumber", "Account number is required")
	case !format.ValidAccountNumber(f.AccountNumber):
		errs.add("accountNumber", "Enter a valid account number (9-18 digits)")
	}

	switch {
	case f.ConfirmAccountNumber == "":
		errs.add("confirmAccountNumber", "Please confirm account number")
	case f.AccountNumber != f.ConfirmAccountNumber:
		errs.add("confirmAccountNumber", "Account numbers do not match")
	}

	switch {
	case f.IFSCCode == "":
		errs.add("ifscCode", "IFSC code is required")
	case !format.ValidIFSC(f.IFSCCode):
		errs.add("ifscCode", "Enter a valid IFSC code (e.g., HDFC0001234)")
	}

	if strings.TrimSpace(f.AccountHolderName) == "" {
		errs.add("accountHolderName", "Account holder name is required")
	}

	switch f.AccountType {
	case "", model.Savings, model.Current:
	default:
		errs.add("accountType", fmt.Sprintf("unknown account type %q", f.AccountType))
	}

	return errs.err()
}

// AddBankAccount validates the form and links the account. The first
// account linked becomes the default.
func (s *Service) AddBankAccount(form BankAccountForm) (model.LocalBankAccount, error) {
	if err := form.Validate(); err != nil {
		return model.LocalBankAccount{}, err
	}

	accountType := form.AccountType
	if accountType == "" {
		accountType = model.Savings
	}

	acct, err := s.store.AddBankAccount(model.NewBankAccount{
		BankName:          form.BankName,
		AccountNumber:     form.AccountNumber,
		IFSCCode:          strings.ToUpper(form.IFSCCode),
		AccountHolderName: strings.TrimSpace(form.AccountHolderName),
		AccountType:       accountType,
		IsDefault:         len(s.store.State().LocalBankAccounts) == 0,
	})
	if err != nil {
		return model.LocalBankAccount{}, fmt.Errorf("adding bank account: %w", err)
	}
	s.record(activity.ActionBankAccountAdded, acct.BankName+" "+format.MaskAccountNumber(acct.AccountNumber), acct.ID)
	return acct, nil
}
