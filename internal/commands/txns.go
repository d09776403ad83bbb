package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sentra-dev/sentra/internal/format"
	"github.com/sentra-dev/sentra/internal/model"
	"github.com/sentra-dev/sentra/internal/wallet"
)

func newTxnsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "txns",
		Aliases: []string{"transactions"},
		Short:   "Browse and update transactions",
	}

	cmd.AddCommand(newTxnsListCommand(a), newTxnsShowCommand(a), newTxnsStatusCommand(a))

	return cmd
}

func newTxnsListCommand(a *app) *cobra.Command {
	var f wallet.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			if f.Status != "" && f.Status != wallet.All && !model.TransactionStatus(f.Status).Valid() {
				return fmt.Errorf("unknown status %q", f.Status)
			}
			switch model.TransactionType(f.Type) {
			case "", wallet.All, model.TypeReceived, model.TypeWithdrawal:
			default:
				return fmt.Errorf("unknown type %q", f.Type)
			}

			txns := wallet.FilterTransactions(a.store.State().Transactions, f)
			if len(txns) == 0 {
				warning(cmd, "No transactions found")
				return nil
			}

			rows := pterm.TableData{{"ID", "Date", "Type", "Description", "Amount", "Status"}}
			for _, t := range txns {
				rows = append(rows, []string{
					t.ID,
					format.Date(t.CreatedAt),
					string(t.Type),
					t.Description,
					signedAmount(t),
					string(t.Status),
				})
			}
			return table(cmd, rows)
		}),
	}

	cmd.Flags().StringVarP(&f.Search, "search", "s", "", "match description or id")
	cmd.Flags().StringVar(&f.Status, "status", wallet.All, "pending, completed, failed or all")
	cmd.Flags().StringVar(&f.Type, "type", wallet.All, "received, withdrawal or all")

	return cmd
}

func signedAmount(t model.Transaction) string {
	sign := "+"
	if t.Type == model.TypeWithdrawal {
		sign = "-"
	}
	return sign + format.Currency(t.AmountSource, t.CurrencySource)
}

func newTxnsShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transaction-id>",
		Short: "Show one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			t, err := a.store.Transaction(args[0])
			if err != nil {
				return err
			}

			rows := pterm.TableData{
				{"Field", "Value"},
				{"ID", t.ID},
				{"Type", string(t.Type)},
				{"Status", string(t.Status)},
				{"Description", t.Description},
				{"Amount", signedAmount(t)},
				{"Fee", format.Currency(t.Fee, t.CurrencySource)},
				{"Created", format.DateTime(t.CreatedAt)},
			}
			if t.AmountDestination != nil {
				rows = append(rows, []string{"Amount received", format.Currency(*t.AmountDestination, t.CurrencyDestination)})
			}
			if t.ExchangeRate != nil {
				rows = append(rows, []string{"Exchange rate", t.ExchangeRate.String()})
			}
			if t.CompletedAt != nil {
				rows = append(rows, []string{"Completed", format.DateTime(*t.CompletedAt)})
			}
			return table(cmd, rows)
		}),
	}
}

func newTxnsStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status <transaction-id> <pending|completed|failed>",
		Short: "Change the status of a transaction",
		Args:  cobra.ExactArgs(2),
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			status := model.TransactionStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("unknown status %q", args[1])
			}
			if _, err := a.store.Transaction(args[0]); err != nil {
				return err
			}
			a.store.UpdateTransactionStatus(args[0], status)
			success(cmd, "%s is now %s", args[0], status)
			return nil
		}),
	}
}
