package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sentra-dev/sentra/internal/format"
	"github.com/sentra-dev/sentra/internal/model"
	"github.com/sentra-dev/sentra/internal/money"
	"github.com/sentra-dev/sentra/internal/wallet"
)

func newAccountsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Show your USD and EUR receiving accounts",
		Args:  cobra.NoArgs,
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			if err := a.requireUser(); err != nil {
				return err
			}
			st := a.store.State()
			if len(st.VirtualAccounts) == 0 {
				warning(cmd, "No virtual accounts yet")
				return nil
			}

			rows := pterm.TableData{{"ID", "Currency", "Balance", "Bank", "Account Number"}}
			for _, va := range st.VirtualAccounts {
				rows = append(rows, []string{
					va.ID,
					string(va.Currency),
					format.Currency(va.Balance, va.Currency),
					va.BankName,
					va.AccountNumber,
				})
			}
			if err := table(cmd, rows); err != nil {
				return err
			}

			total := money.PortfolioValue(st.VirtualAccounts, a.cfg.MoneyRates())
			info(cmd, "Portfolio value: %s", format.Currency(total, model.INR))
			return nil
		}),
	}

	cmd.AddCommand(newAccountDetailsCommand(a), newRequestCommand(a))

	return cmd
}

func newAccountDetailsCommand(a *app) *cobra.Command {
	var copyAll bool

	cmd := &cobra.Command{
		Use:   "details <account-id>",
		Short: "Print the details payers need to send you money",
		Args:  cobra.ExactArgs(1),
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			va, err := a.store.VirtualAccount(args[0])
			if err != nil {
				return err
			}
			details := format.VirtualAccountDetails(va)
			fmt.Fprintln(cmd.OutOrStdout(), details)

			if copyAll {
				if format.CopyToClipboard(details) {
					success(cmd, "Account details copied")
				} else {
					warning(cmd, "Could not access the clipboard")
				}
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&copyAll, "copy", false, "also copy the details to the clipboard")

	return cmd
}

func newRequestCommand(a *app) *cobra.Command {
	var req wallet.PaymentRequest

	cmd := &cobra.Command{
		Use:   "request <account-id>",
		Short: "Email your account details to a payer",
		Args:  cobra.ExactArgs(1),
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			req.AccountID = args[0]
			if err := a.wallet.RequestPayment(cmd.Context(), req); err != nil {
				return err
			}
			success(cmd, "Request sent with account details")
			return nil
		}),
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "payer email address")
	cmd.Flags().StringVar(&req.Amount, "amount", "", "amount to request (optional)")
	cmd.Flags().StringVar(&req.Note, "note", "", "note for the payer")

	return cmd
}
