package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sentra-dev/sentra/internal/demo"
	"github.com/sentra-dev/sentra/internal/format"
	"github.com/sentra-dev/sentra/internal/model"
	"github.com/sentra-dev/sentra/internal/wallet"
)

func newBanksCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "banks",
		Short: "Manage the Indian bank accounts you withdraw to",
	}

	cmd.AddCommand(
		newBanksListCommand(a),
		newBanksAddCommand(a),
		newBanksRemoveCommand(a),
		newBanksDefaultCommand(a),
		newBanksSupportedCommand(),
	)

	return cmd
}

func newBanksListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List linked bank accounts",
		Args:  cobra.NoArgs,
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			accts := a.store.State().LocalBankAccounts
			if len(accts) == 0 {
				warning(cmd, "No bank accounts linked. Add one with 'sentra banks add'.")
				return nil
			}

			rows := pterm.TableData{{"ID", "Bank", "Account", "IFSC", "Holder", "Type", "Default", "Added"}}
			for _, b := range accts {
				def := ""
				if b.IsDefault {
					def = "yes"
				}
				rows = append(rows, []string{
					b.ID,
					b.BankName,
					format.MaskAccountNumber(b.AccountNumber),
					b.IFSCCode,
					b.AccountHolderName,
					string(b.AccountType),
					def,
					format.Date(b.CreatedAt),
				})
			}
			return table(cmd, rows)
		}),
	}
}

func newBanksAddCommand(a *app) *cobra.Command {
	var form wallet.BankAccountForm
	var accountType string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Link a bank account",
		Args:  cobra.NoArgs,
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			form.AccountType = model.BankAccountType(accountType)
			acct, err := a.wallet.AddBankAccount(form)
			if err != nil {
				return err
			}
			success(cmd, "Bank account added successfully (%s)", acct.ID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&form.BankName, "bank", "", "bank name, see 'sentra banks supported'")
	cmd.Flags().StringVar(&form.AccountNumber, "number", "", "account number")
	cmd.Flags().StringVar(&form.ConfirmAccountNumber, "confirm-number", "", "account number again")
	cmd.Flags().StringVar(&form.IFSCCode, "ifsc", "", "branch IFSC code")
	cmd.Flags().StringVar(&form.AccountHolderName, "holder", "", "account holder name")
	cmd.Flags().StringVar(&accountType, "type", string(model.Savings), "savings or current")

	return cmd
}

func newBanksRemoveCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <account-id>",
		Short: "Unlink a bank account",
		Args:  cobra.ExactArgs(1),
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			acct, err := a.store.BankAccount(args[0])
			if err != nil {
				return err
			}
			ok, err := confirm(yes, "Are you sure you want to remove "+acct.BankName+"?")
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}

			st := a.store.RemoveBankAccount(acct.ID)
			success(cmd, "%s removed", acct.BankName)
			if acct.IsDefault {
				if def, found := st.DefaultBankAccount(); found {
					info(cmd, "%s is now your default account", def.BankName)
				}
			}
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func newBanksDefaultCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "default <account-id>",
		Short: "Make a bank account the default withdrawal destination",
		Args:  cobra.ExactArgs(1),
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			acct, err := a.store.BankAccount(args[0])
			if err != nil {
				return err
			}
			a.store.SetDefaultBankAccount(acct.ID)
			success(cmd, "%s is now your default account", acct.BankName)
			return nil
		}),
	}
}

func newBanksSupportedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "supported",
		Short: "List banks that can be linked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := pterm.TableData{{"Code", "Bank"}}
			for _, b := range demo.IndianBanks() {
				rows = append(rows, []string{b.Code, b.Name})
			}
			return table(cmd, rows)
		},
	}
}
