package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentra-dev/sentra/internal/config"
	"github.com/sentra-dev/sentra/internal/state"
)

func init() {
	pterm.DisableStyling()
}

// setup writes a config using file storage inside a temp dir and no
// simulated latency.
func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.Path = "data"
	cfg.Latency = config.LatencyConfig{KYC: "0s", Withdrawal: "0s", Request: "0s"}
	path := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, config.Save(path, cfg))
	return path
}

func run(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func mustRun(t *testing.T, cfgPath string, args ...string) string {
	t.Helper()
	out, err := run(t, cfgPath, args...)
	require.NoError(t, err, out)
	return out
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	out := mustRun(t, filepath.Join(dir, DefaultConfigFile), "init", dir)
	assert.Contains(t, out, "Wrote")

	data, err := os.ReadFile(filepath.Join(dir, DefaultConfigFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "driver: file")

	_, err = run(t, filepath.Join(dir, DefaultConfigFile), "init", dir)
	assert.ErrorContains(t, err, "already exists")

	mustRun(t, filepath.Join(dir, DefaultConfigFile), "init", dir, "--force", "--driver", "sqlite")
	data, err = os.ReadFile(filepath.Join(dir, DefaultConfigFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "driver: sqlite")
	assert.Contains(t, string(data), "path: sentra.db")
}

func TestInit_UnknownDriver(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, filepath.Join(dir, DefaultConfigFile), "init", dir, "--driver", "s3")
	assert.ErrorContains(t, err, `unknown storage.driver "s3"`)
}

func TestDemoAndStatus(t *testing.T) {
	cfg := setup(t)

	out := mustRun(t, cfg, "status")
	assert.Contains(t, out, "Not signed in")

	out = mustRun(t, cfg, "demo")
	assert.Contains(t, out, "Loaded demo account for Sudip S Jamwal")

	out = mustRun(t, cfg, "status")
	assert.Contains(t, out, "Sudip S Jamwal")
	assert.Contains(t, out, "₹1,861,040.00")
	assert.Contains(t, out, "Jun 15, 1995")
	assert.Contains(t, out, "India")
}

func TestSQLiteDriver(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, DefaultConfigFile)
	mustRun(t, cfg, "init", dir, "--driver", "sqlite")

	mustRun(t, cfg, "demo")
	out := mustRun(t, cfg, "status")
	assert.Contains(t, out, "Sudip S Jamwal")

	_, err := os.Stat(filepath.Join(dir, "sentra.db"))
	assert.NoError(t, err)
}

func TestAccounts(t *testing.T) {
	cfg := setup(t)

	_, err := run(t, cfg, "accounts")
	assert.ErrorContains(t, err, "not signed in")

	mustRun(t, cfg, "demo")
	out := mustRun(t, cfg, "accounts")
	assert.Contains(t, out, "va-usd-001")
	assert.Contains(t, out, "$12,450.00")
	assert.Contains(t, out, "€8,320.00")
	assert.Contains(t, out, "Portfolio value: ₹1,861,040.00")

	out = mustRun(t, cfg, "accounts", "details", "va-eur-001")
	assert.Contains(t, out, "IBAN: DE89370400440532013000")
	assert.Contains(t, out, "SWIFT/BIC: DEUTDEFF")

	_, err = run(t, cfg, "accounts", "details", "va-gbp-001")
	assert.ErrorIs(t, err, state.ErrNotFound)
}

func TestAccountsRequest(t *testing.T) {
	cfg := setup(t)
	mustRun(t, cfg, "demo")

	out := mustRun(t, cfg, "accounts", "request", "va-usd-001", "--email", "client@example.com", "--amount", "300")
	assert.Contains(t, out, "Request sent with account details")

	_, err := run(t, cfg, "accounts", "request", "va-usd-001", "--email", "client")
	assert.ErrorContains(t, err, "Enter a valid email address")
}

func TestSignupAndKYC(t *testing.T) {
	cfg := setup(t)

	_, err := run(t, cfg, "signup", "--name", "")
	assert.ErrorContains(t, err, "Please enter your name")

	mustRun(t, cfg, "signup", "--name", "Asha Rao", "--email", "asha@example.com")

	_, err = run(t, cfg, "kyc", "--phone", "+91 9000000000")
	assert.ErrorContains(t, err, "Date of birth is required")

	out := mustRun(t, cfg, "kyc", "--phone", "+91 9000000000", "--dob", "1994-02-11", "--address", "Pune")
	assert.Contains(t, out, "Welcome to Sentra, Asha!")

	out = mustRun(t, cfg, "status")
	assert.Contains(t, out, "Asha Rao")
	assert.Contains(t, out, "asha@example.com")
	assert.Contains(t, out, "Feb 11, 1994")
	assert.Contains(t, out, "verified")
}

func TestBanks(t *testing.T) {
	cfg := setup(t)
	mustRun(t, cfg, "demo")

	out := mustRun(t, cfg, "banks", "list")
	assert.Contains(t, out, "****6789")
	assert.Contains(t, out, "HDFC Bank")

	out = mustRun(t, cfg, "banks", "add",
		"--bank", "Axis Bank",
		"--number", "918020012345678",
		"--confirm-number", "918020012345678",
		"--ifsc", "utib0000123",
		"--holder", "Sudip S Jamwal",
	)
	assert.Contains(t, out, "Bank account added successfully")

	out = mustRun(t, cfg, "banks", "list")
	assert.Contains(t, out, "UTIB0000123")

	_, err := run(t, cfg, "banks", "add", "--bank", "Axis Bank", "--number", "123")
	assert.ErrorContains(t, err, "Enter a valid account number (9-18 digits)")

	out = mustRun(t, cfg, "banks", "remove", "lba-001", "--yes")
	assert.Contains(t, out, "HDFC Bank removed")
	assert.Contains(t, out, "State Bank of India is now your default account")

	_, err = run(t, cfg, "banks", "default", "lba-404")
	assert.ErrorIs(t, err, state.ErrNotFound)

	out = mustRun(t, cfg, "banks", "supported")
	assert.Contains(t, out, "IDBI Bank")
}

func TestQuote(t *testing.T) {
	cfg := setup(t)

	out := mustRun(t, cfg, "quote", "1000")
	assert.Contains(t, out, "$6.00")
	assert.Contains(t, out, "₹87,472.00")
	assert.Contains(t, out, "Wise")
	assert.Contains(t, out, "Western Union")
	assert.Contains(t, out, "You save ₹1,447.75 compared to Wise")

	_, err := run(t, cfg, "quote", "100", "--currency", "INR")
	assert.ErrorContains(t, err, "only USD and EUR")

	_, err = run(t, cfg, "quote", "-5")
	assert.Error(t, err)
}

func TestWithdraw(t *testing.T) {
	cfg := setup(t)
	mustRun(t, cfg, "demo")

	out := mustRun(t, cfg, "withdraw", "--from", "va-usd-001", "--amount", "1000", "--yes")
	assert.Contains(t, out, "HDFC Bank receives")
	assert.Contains(t, out, "₹87,472.00")
	assert.Contains(t, out, "Withdrawal submitted. Reference TXN")

	out = mustRun(t, cfg, "accounts")
	assert.Contains(t, out, "$11,450.00")

	out = mustRun(t, cfg, "txns", "list", "--status", "pending", "--type", "withdrawal")
	assert.Contains(t, out, "Withdrawal to HDFC Bank")
	assert.Contains(t, out, "-$1,000.00")
	assert.Contains(t, out, "State Bank of India")

	_, err := run(t, cfg, "withdraw", "--from", "va-usd-001", "--amount", "5", "--yes")
	assert.ErrorContains(t, err, "Minimum withdrawal is $10.00")

	_, err = run(t, cfg, "withdraw", "--from", "va-eur-001", "--amount", "9000", "--yes")
	assert.ErrorContains(t, err, "Insufficient balance")
}

func TestTxns(t *testing.T) {
	cfg := setup(t)
	mustRun(t, cfg, "demo")

	out := mustRun(t, cfg, "txns", "list", "--search", "upwork")
	assert.Contains(t, out, "txn-003")
	assert.NotContains(t, out, "txn-001")

	out = mustRun(t, cfg, "txns", "list", "--status", "failed")
	assert.Contains(t, out, "No transactions found")

	_, err := run(t, cfg, "txns", "list", "--type", "refund")
	assert.ErrorContains(t, err, `unknown type "refund"`)

	mustRun(t, cfg, "txns", "status", "txn-004", "completed")
	out = mustRun(t, cfg, "txns", "show", "txn-004")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "Completed")

	_, err = run(t, cfg, "txns", "status", "txn-004", "done")
	assert.ErrorContains(t, err, `unknown status "done"`)

	_, err = run(t, cfg, "txns", "show", "txn-999")
	assert.ErrorIs(t, err, state.ErrNotFound)
}

func TestResetAndLogout(t *testing.T) {
	cfg := setup(t)

	mustRun(t, cfg, "demo")
	out := mustRun(t, cfg, "reset", "--yes")
	assert.Contains(t, out, "All data erased")
	out = mustRun(t, cfg, "status")
	assert.Contains(t, out, "Not signed in")

	mustRun(t, cfg, "signup", "--name", "Asha Rao", "--email", "asha@example.com")
	mustRun(t, cfg, "demo")
	mustRun(t, cfg, "logout")

	out = mustRun(t, cfg, "status")
	assert.Contains(t, out, "Not signed in")
	_, err := run(t, cfg, "kyc", "--phone", "1", "--dob", "1994-02-11", "--address", "Pune")
	assert.ErrorContains(t, err, "Full name is required")
}

func TestActivity(t *testing.T) {
	cfg := setup(t)
	mustRun(t, cfg, "demo")

	out := mustRun(t, cfg, "activity")
	assert.Contains(t, out, "No activity recorded in")
	assert.Contains(t, out, "activity.csv")

	mustRun(t, cfg, "withdraw", "--from", "va-eur-001", "--amount", "100", "--yes")
	mustRun(t, cfg, "accounts", "request", "va-usd-001", "--email", "client@example.com")

	out = mustRun(t, cfg, "activity")
	assert.Contains(t, out, "withdrawal_submitted")
	assert.Contains(t, out, "€100.00 to HDFC Bank")
	assert.Contains(t, out, "payment_requested")

	out = mustRun(t, cfg, "activity", "--limit", "1")
	assert.Contains(t, out, "payment_requested")
	assert.NotContains(t, out, "withdrawal_submitted")

	_, err := os.Stat(filepath.Join(filepath.Dir(cfg), "activity.csv"))
	assert.NoError(t, err)
}
