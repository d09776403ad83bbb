package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentra-dev/sentra/internal/storage"
	"github.com/sentra-dev/sentra/internal/wallet"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Storage.Driver = storage.DriverSQLite
	cfg.Storage.Path = "state.db"
	cfg.Rates.USDINR = 86.5
	cfg.Latency.Withdrawal = "0s"
	cfg.BankAccounts.PromoteOnRemove = false
	cfg.Activity.Path = ""

	path := filepath.Join(t.TempDir(), "sentra.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, storage.DriverFile, cfg.Storage.Driver)
	assert.Equal(t, ".sentra", cfg.Storage.Path)
	assert.True(t, cfg.MoneyRates().USDINR.Equal(decimalOf(t, "88")))
	assert.True(t, cfg.MoneyRates().EURINR.Equal(decimalOf(t, "92")))
	assert.True(t, cfg.FeeSchedule().BaseFee.Equal(decimalOf(t, "1")))
	assert.True(t, cfg.FeeSchedule().VariableRate.Equal(decimalOf(t, "0.005")))
	assert.True(t, cfg.MinWithdrawal().Equal(decimalOf(t, "10")))
	assert.True(t, cfg.BankAccounts.PromoteOnRemove)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "activity.csv", cfg.Activity.Path)
	assert.NoError(t, cfg.Validate())

	fixed, err := cfg.Latency.Fixed()
	require.NoError(t, err)
	assert.Equal(t, wallet.DefaultLatency(), fixed)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Resolve(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestResolveReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	cfg, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: loud\n"), 0o644))
	_, err = Resolve(path)
	assert.Error(t, err)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rates:\n  usd_inr: 90\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.InDelta(t, 90, cfg.Rates.USDINR, 0.001)
	assert.InDelta(t, 92, cfg.Rates.EURINR, 0.001)
	assert.Equal(t, "1500ms", cfg.Latency.KYC)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SENTRA_STORAGE_DRIVER", "memory")
	t.Setenv("SENTRA_FEES_VARIABLE_RATE", "0.01")
	t.Setenv("SENTRA_LATENCY_REQUEST", "0s")
	t.Setenv("SENTRA_BANK_ACCOUNTS_PROMOTE_ON_REMOVE", "false")

	path := filepath.Join(t.TempDir(), "sentra.yaml")
	require.NoError(t, Save(path, Default()))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, storage.DriverMemory, cfg.Storage.Driver)
	assert.InDelta(t, 0.01, cfg.Fees.VariableRate, 0.0001)
	assert.Equal(t, "0s", cfg.Latency.Request)
	assert.False(t, cfg.BankAccounts.PromoteOnRemove)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad driver", func(c *Config) { c.Storage.Driver = "s3" }, `unknown storage.driver "s3"`},
		{"missing path", func(c *Config) { c.Storage.Path = "" }, "storage.path is required"},
		{"memory needs no path", func(c *Config) { c.Storage.Driver, c.Storage.Path = storage.DriverMemory, "" }, ""},
		{"zero rate", func(c *Config) { c.Rates.EURINR = 0 }, "exchange rates must be positive"},
		{"negative fee", func(c *Config) { c.Fees.BaseFee = -1 }, "fees must not be negative"},
		{"negative minimum", func(c *Config) { c.Withdrawal.MinAmount = -1 }, "withdrawal.min_amount"},
		{"bad duration", func(c *Config) { c.Latency.KYC = "soon" }, "latency.kyc"},
		{"negative duration", func(c *Config) { c.Latency.Request = "-1s" }, "latency.request must not be negative"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLatencyFixed(t *testing.T) {
	fixed, err := LatencyConfig{KYC: "2s", Request: "0s"}.Fixed()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, fixed[wallet.StepKYC])
	assert.Zero(t, fixed[wallet.StepRequest])
	_, ok := fixed[wallet.StepWithdrawal]
	assert.False(t, ok)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentra.yaml")
	err := Save(path, Default())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "driver: file")
	assert.Contains(t, contents, "usd_inr: 88")
	assert.Contains(t, contents, "variable_rate: 0.005")
	assert.Contains(t, contents, "withdrawal: 1500ms")
	assert.Contains(t, contents, "promote_on_remove: true")
}

func decimalOf(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
