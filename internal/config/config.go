package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/sentra-dev/sentra/internal/logging"
	"github.com/sentra-dev/sentra/internal/money"
	"github.com/sentra-dev/sentra/internal/storage"
	"github.com/sentra-dev/sentra/internal/wallet"
)

// EnvPrefix prefixes environment overrides, e.g. SENTRA_RATES_USD_INR.
const EnvPrefix = "SENTRA"

// Config represents the top-level sentra.yaml configuration.
type Config struct {
	Storage      StorageConfig      `yaml:"storage" mapstructure:"storage"`
	Rates        RatesConfig        `yaml:"rates" mapstructure:"rates"`
	Fees         FeesConfig         `yaml:"fees" mapstructure:"fees"`
	Withdrawal   WithdrawalConfig   `yaml:"withdrawal" mapstructure:"withdrawal"`
	Latency      LatencyConfig      `yaml:"latency" mapstructure:"latency"`
	BankAccounts BankAccountsConfig `yaml:"bank_accounts" mapstructure:"bank_accounts"`
	Activity     ActivityConfig     `yaml:"activity" mapstructure:"activity"`
	Log          LogConfig          `yaml:"log" mapstructure:"log"`
}

// StorageConfig selects where the app state is kept.
type StorageConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"` // file, sqlite or memory
	Path   string `yaml:"path" mapstructure:"path"`     // directory for file, database file for sqlite
}

// RatesConfig holds INR exchange rates.
type RatesConfig struct {
	USDINR float64 `yaml:"usd_inr" mapstructure:"usd_inr"`
	EURINR float64 `yaml:"eur_inr" mapstructure:"eur_inr"`
}

// FeesConfig holds the withdrawal fee schedule.
type FeesConfig struct {
	BaseFee      float64 `yaml:"base_fee" mapstructure:"base_fee"`
	VariableRate float64 `yaml:"variable_rate" mapstructure:"variable_rate"`
}

// WithdrawalConfig bounds withdrawals.
type WithdrawalConfig struct {
	MinAmount float64 `yaml:"min_amount" mapstructure:"min_amount"`
}

// LatencyConfig paces the interactive flows. Values are Go durations
// such as "1500ms"; "0s" disables a pause.
type LatencyConfig struct {
	KYC        string `yaml:"kyc" mapstructure:"kyc"`
	Withdrawal string `yaml:"withdrawal" mapstructure:"withdrawal"`
	Request    string `yaml:"request" mapstructure:"request"`
}

// BankAccountsConfig controls local bank account bookkeeping.
type BankAccountsConfig struct {
	PromoteOnRemove bool `yaml:"promote_on_remove" mapstructure:"promote_on_remove"`
}

// ActivityConfig locates the CSV history of user actions. An empty path
// disables it.
type ActivityConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

// Default returns a Config with the standard Sentra rates and fees.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: storage.DriverFile,
			Path:   ".sentra",
		},
		Rates: RatesConfig{
			USDINR: 88,
			EURINR: 92,
		},
		Fees: FeesConfig{
			BaseFee:      1,
			VariableRate: 0.005,
		},
		Withdrawal: WithdrawalConfig{
			MinAmount: 10,
		},
		Latency: LatencyConfig{
			KYC:        "1500ms",
			Withdrawal: "1500ms",
			Request:    "800ms",
		},
		BankAccounts: BankAccountsConfig{
			PromoteOnRemove: true,
		},
		Activity: ActivityConfig{
			Path: "activity.csv",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads a sentra.yaml file from disk. Environment variables prefixed
// with SENTRA_ override file values, and keys absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return read(path)
}

// Resolve is like Load but falls back to defaults plus environment
// overrides when the file does not exist.
func Resolve(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return read("")
	}
	return cfg, err
}

func read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("storage.driver", d.Storage.Driver)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("rates.usd_inr", d.Rates.USDINR)
	v.SetDefault("rates.eur_inr", d.Rates.EURINR)
	v.SetDefault("fees.base_fee", d.Fees.BaseFee)
	v.SetDefault("fees.variable_rate", d.Fees.VariableRate)
	v.SetDefault("withdrawal.min_amount", d.Withdrawal.MinAmount)
	v.SetDefault("latency.kyc", d.Latency.KYC)
	v.SetDefault("latency.withdrawal", d.Latency.Withdrawal)
	v.SetDefault("latency.request", d.Latency.Request)
	v.SetDefault("bank_accounts.promote_on_remove", d.BankAccounts.PromoteOnRemove)
	v.SetDefault("activity.path", d.Activity.Path)
	v.SetDefault("log.level", d.Log.Level)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case storage.DriverFile, storage.DriverSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for driver %q", c.Storage.Driver)
		}
	case storage.DriverMemory:
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Rates.USDINR <= 0 || c.Rates.EURINR <= 0 {
		return fmt.Errorf("exchange rates must be positive")
	}
	if c.Fees.BaseFee < 0 || c.Fees.VariableRate < 0 {
		return fmt.Errorf("fees must not be negative")
	}
	if c.Withdrawal.MinAmount < 0 {
		return fmt.Errorf("withdrawal.min_amount must not be negative")
	}
	if _, err := c.Latency.Fixed(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// MoneyRates returns the configured exchange rates.
func (c *Config) MoneyRates() money.Rates {
	return money.Rates{
		USDINR: decimal.NewFromFloat(c.Rates.USDINR),
		EURINR: decimal.NewFromFloat(c.Rates.EURINR),
	}
}

// FeeSchedule returns the configured withdrawal fees.
func (c *Config) FeeSchedule() money.FeeSchedule {
	return money.FeeSchedule{
		BaseFee:      decimal.NewFromFloat(c.Fees.BaseFee),
		VariableRate: decimal.NewFromFloat(c.Fees.VariableRate),
	}
}

// MinWithdrawal returns the configured minimum withdrawal amount.
func (c *Config) MinWithdrawal() decimal.Decimal {
	return decimal.NewFromFloat(c.Withdrawal.MinAmount)
}

// Fixed parses the configured pauses.
func (l LatencyConfig) Fixed() (wallet.Fixed, error) {
	out := wallet.Fixed{}
	for step, raw := range map[wallet.Step]string{
		wallet.StepKYC:        l.KYC,
		wallet.StepWithdrawal: l.Withdrawal,
		wallet.StepRequest:    l.Request,
	} {
		if raw == "" {
			continue
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("latency.%s: %w", step, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("latency.%s must not be negative", step)
		}
		out[step] = d
	}
	return out, nil
}
