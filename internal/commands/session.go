package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/sentra-dev/sentra/internal/demo"
	"github.com/sentra-dev/sentra/internal/format"
	"github.com/sentra-dev/sentra/internal/model"
	"github.com/sentra-dev/sentra/internal/money"
	"github.com/sentra-dev/sentra/internal/wallet"
)

func newSignupCommand(a *app) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Start creating an account",
		Args:  cobra.NoArgs,
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			if err := a.wallet.StartSignup(name, email); err != nil {
				return err
			}
			success(cmd, "Thanks %s. Run 'sentra kyc' to verify your identity.", name)
			return nil
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "your full name")
	cmd.Flags().StringVar(&email, "email", "", "your email address")

	return cmd
}

func newKYCCommand(a *app) *cobra.Command {
	var form wallet.KYCForm

	cmd := &cobra.Command{
		Use:   "kyc",
		Short: "Verify your identity and open your accounts",
		Args:  cobra.NoArgs,
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			// Name and email carry over from signup unless given again.
			prefill := a.wallet.Prefill()
			if form.FullName == "" {
				form.FullName = prefill.FullName
			}
			if form.Email == "" {
				form.Email = prefill.Email
			}

			info(cmd, "Verifying your identity...")
			u, err := a.wallet.SubmitKYC(cmd.Context(), form)
			if err != nil {
				return err
			}
			success(cmd, "Welcome to Sentra, %s!", u.FirstName())
			return nil
		}),
	}

	cmd.Flags().StringVar(&form.FullName, "name", "", "full name as on your ID")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&form.DateOfBirth, "dob", "", "date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.Address, "address", "", "residential address")

	return cmd
}

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "demo",
		Aliases: []string{"skip-kyc"},
		Short:   "Skip verification and load a demo account",
		Args:    cobra.NoArgs,
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			st := a.store.SkipKYC()
			success(cmd, "Loaded demo account for %s", st.User.FullName)
			return nil
		}),
	}
}

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your profile and portfolio summary",
		Args:  cobra.NoArgs,
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			st := a.store.State()
			if st.User == nil {
				warning(cmd, "Not signed in")
				return nil
			}

			pending := 0
			for _, t := range st.Transactions {
				if t.Status == model.StatusPending {
					pending++
				}
			}
			total := money.PortfolioValue(st.VirtualAccounts, a.cfg.MoneyRates())

			rows := pterm.TableData{
				{"Field", "Value"},
				{"Name", st.User.FullName},
				{"Email", st.User.Email},
				{"Date of birth", format.DateString(st.User.DateOfBirth)},
				{"Country", countryName(st.User.Country)},
				{"KYC", string(st.User.KYCStatus)},
				{"Onboarded", fmt.Sprintf("%t", st.IsOnboarded)},
				{"Member since", format.Date(st.User.CreatedAt)},
				{"Portfolio value", format.Currency(total, model.INR)},
				{"Bank accounts", fmt.Sprintf("%d", len(st.LocalBankAccounts))},
				{"Pending transactions", fmt.Sprintf("%d", pending)},
			}
			return table(cmd, rows)
		}),
	}
}

func countryName(code model.Country) string {
	for _, c := range demo.SupportedCountries() {
		if c.Code == code {
			return c.Name
		}
	}
	return string(code)
}

func newResetCommand(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all saved data",
		Args:  cobra.NoArgs,
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(yes, "Erase all accounts and transactions?")
			if err != nil {
				return err
			}
			if !ok {
				warning(cmd, "Reset cancelled")
				return nil
			}
			a.store.Reset()
			success(cmd, "All data erased")
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the session",
		Args:  cobra.NoArgs,
		RunE: a.withApp(func(cmd *cobra.Command, args []string) error {
			a.store.Logout()
			success(cmd, "Signed out")
			return nil
		}),
	}
}
