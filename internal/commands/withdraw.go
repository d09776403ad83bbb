package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sentra-dev/sentra/internal/demo"
	"github.com/sentra-dev/sentra/internal/format"
	"github.com/sentra-dev/sentra/internal/model"
	"github.com/sentra-dev/sentra/internal/money"
	"github.com/sentra-dev/sentra/internal/wallet"
)

func newWithdrawCommand(a *app) *cobra.Command {
	var req wallet.WithdrawalRequest
	var yes bool

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw from a virtual account to a linked bank account",
		Args:  cobra.NoArgs,
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			if err := a.requireUser(); err != nil {
				return err
			}
			if req.DestinationID == "" {
				def, ok := a.store.State().DefaultBankAccount()
				if !ok {
					return fmt.Errorf("no bank account linked: run 'sentra banks add' first")
				}
				req.DestinationID = def.ID
			}

			q, err := a.wallet.QuoteWithdrawal(req)
			if err != nil {
				return err
			}
			if err := renderQuote(cmd, q.Details, q.Destination.BankName); err != nil {
				return err
			}

			ok, err := confirm(yes, "Confirm withdrawal?")
			if err != nil {
				return err
			}
			if !ok {
				warning(cmd, "Withdrawal cancelled")
				return nil
			}

			info(cmd, "Processing withdrawal...")
			rcpt, err := a.wallet.Withdraw(cmd.Context(), req)
			if err != nil {
				return err
			}
			success(cmd, "Withdrawal submitted. Reference %s (%s)", rcpt.Reference, rcpt.Transaction.ID)
			return nil
		}),
	}

	cmd.Flags().StringVar(&req.SourceID, "from", "", "virtual account id to withdraw from")
	cmd.Flags().StringVar(&req.DestinationID, "to", "", "bank account id (default account if omitted)")
	cmd.Flags().StringVar(&req.Amount, "amount", "", "amount in the source currency")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func renderQuote(cmd *cobra.Command, w money.Withdrawal, bank string) error {
	rows := pterm.TableData{
		{"", "Amount"},
		{"You send", format.Currency(w.Amount, w.Currency)},
		{"Base fee", format.Currency(w.BaseFee, w.Currency)},
		{"Variable fee", format.Currency(w.VariableFee, w.Currency)},
		{"Total fee", format.Currency(w.TotalFee, w.Currency)},
		{"Converted", format.Currency(w.NetAmount, w.Currency)},
		{"Exchange rate", fmt.Sprintf("1 %s = %s", w.Currency, format.Currency(w.ExchangeRate, model.INR))},
	}
	if bank != "" {
		rows = append(rows, []string{bank + " receives", format.Currency(w.AmountInINR, model.INR)})
	} else {
		rows = append(rows, []string{"You receive", format.Currency(w.AmountInINR, model.INR)})
	}
	return table(cmd, rows)
}

func newQuoteCommand(a *app) *cobra.Command {
	var currency string

	cmd := &cobra.Command{
		Use:   "quote <amount>",
		Short: "Price a withdrawal and compare it with other providers",
		Args:  cobra.ExactArgs(1),
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			if !amount.IsPositive() {
				return fmt.Errorf("amount must be greater than zero")
			}
			cur := model.Currency(strings.ToUpper(currency))
			rates := a.cfg.MoneyRates()
			if _, ok := rates.For(cur); !ok {
				return fmt.Errorf("cannot quote %s: only USD and EUR convert to INR", cur)
			}

			w := a.wallet.Calculator().Withdrawal(amount, cur)
			if err := renderQuote(cmd, w, ""); err != nil {
				return err
			}

			results := money.Compare(amount, cur, demo.Providers(rates, a.cfg.FeeSchedule()), demo.ReferenceProvider)
			rows := pterm.TableData{{"Provider", "Rate", "Fee", "You receive", "Sentra saves you"}}
			for _, r := range results {
				saving := "-"
				if r.Key != demo.ReferenceProvider {
					saving = format.Currency(r.Savings, model.INR)
				}
				rows = append(rows, []string{
					r.Provider,
					r.Rate.String(),
					format.Currency(r.Fee, cur),
					format.Currency(r.AmountInINR, model.INR),
					saving,
				})
			}
			if err := table(cmd, rows); err != nil {
				return err
			}

			if best, saved, ok := money.BestAlternative(results, demo.ReferenceProvider); ok && saved.IsPositive() {
				success(cmd, "You save %s compared to %s", format.Currency(saved, model.INR), best.Provider)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&currency, "currency", string(model.USD), "USD or EUR")

	return cmd
}
