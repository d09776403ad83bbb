package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sentra-dev/sentra/internal/activity"
	"github.com/sentra-dev/sentra/internal/config"
	"github.com/sentra-dev/sentra/internal/logging"
	"github.com/sentra-dev/sentra/internal/money"
	"github.com/sentra-dev/sentra/internal/state"
	"github.com/sentra-dev/sentra/internal/storage"
	"github.com/sentra-dev/sentra/internal/wallet"
)

// DefaultConfigFile is read when --config is not given.
const DefaultConfigFile = "sentra.yaml"

// app holds what a command needs once configuration is resolved.
type app struct {
	configPath string
	logLevel   string

	cfg      *config.Config
	store    *state.Store
	wallet   *wallet.Service
	activity *activity.Log
	closeKV  func() error
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(version string) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "sentra",
		Short:   "Receive USD and EUR payments and withdraw them to Indian bank accounts",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level from the config")

	rootCmd.AddCommand(
		newInitCommand(),
		newSignupCommand(a),
		newKYCCommand(a),
		newDemoCommand(a),
		newStatusCommand(a),
		newResetCommand(a),
		newLogoutCommand(a),
		newAccountsCommand(a),
		newBanksCommand(a),
		newQuoteCommand(a),
		newWithdrawCommand(a),
		newTxnsCommand(a),
		newActivityCommand(a),
	)

	return rootCmd
}

// withApp opens the configured store around fn.
func (a *app) withApp(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.open(cmd); err != nil {
			return err
		}
		defer func() {
			if err := a.closeKV(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "closing storage: %v\n", err)
			}
		}()
		return fn(cmd, args)
	}
}

func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	log, err := logging.New(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	kv, closeKV, err := storage.Open(cfg.Storage.Driver, a.resolve(cfg.Storage.Path))
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}

	latency, err := cfg.Latency.Fixed()
	if err != nil {
		_ = closeKV()
		return err
	}

	opts := []wallet.Option{
		wallet.WithLatency(latency),
		wallet.WithMinWithdrawal(cfg.MinWithdrawal()),
		wallet.WithLogger(log),
	}
	a.activity = nil
	if cfg.Activity.Path != "" {
		a.activity = activity.NewLog(a.resolve(cfg.Activity.Path))
		opts = append(opts, wallet.WithActivity(a.activity))
	}

	a.cfg = cfg
	a.closeKV = closeKV
	a.store = state.New(kv,
		state.WithLogger(log),
		state.WithSession(kv),
		state.WithPromoteOnRemove(cfg.BankAccounts.PromoteOnRemove),
	)
	a.wallet = wallet.NewService(a.store, money.NewCalculator(cfg.FeeSchedule(), cfg.MoneyRates()), opts...)
	return nil
}

// resolve anchors relative paths at the config file's directory.
func (a *app) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(a.configPath), path)
}

// requireUser fails when nobody is signed in.
func (a *app) requireUser() error {
	if a.store.User() == nil {
		return fmt.Errorf("not signed in: run 'sentra kyc' or 'sentra demo' first")
	}
	return nil
}
