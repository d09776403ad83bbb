package activity

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp: testTime,
		Action:    ActionWithdrawal,
		Details:   "Withdrawal of $1,000.00 to HDFC Bank, ref TXNMJ3Q0ZK1AB4C9Z",
		Ref:       "txn-7d1c",
	}
}

func TestAppend_NewFile(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "nested", "activity.csv"))
	require.NoError(t, log.Append(testEntry()))

	entries, err := log.Read()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ActionWithdrawal, entries[0].Action)

	data, err := os.ReadFile(log.Path())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), Header+"\n"))
}

func TestAppend_ExistingFile(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "activity.csv"))
	require.NoError(t, log.Append(testEntry()))

	e2 := testEntry()
	e2.Action = ActionBankAccountAdded
	e2.Details = "Axis Bank ****5678"
	require.NoError(t, log.Append(e2))

	entries, err := log.Read()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ActionWithdrawal, entries[0].Action)
	assert.Equal(t, ActionBankAccountAdded, entries[1].Action)

	data, err := os.ReadFile(log.Path())
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header), "header written once")
}

func TestRead_RoundTrip(t *testing.T) {
	log := NewLog(filepath.Join(t.TempDir(), "activity.csv"))
	original := testEntry()
	require.NoError(t, log.Append(original))

	entries, err := log.Read()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.Details, got.Details)
	assert.Equal(t, original.Ref, got.Ref)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := NewLog(filepath.Join(t.TempDir(), "activity.csv")).Read()
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.csv")
	require.NoError(t, os.WriteFile(path, []byte(Header+"\n"), 0o644))

	entries, err := NewLog(path).Read()
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_BadTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.csv")
	require.NoError(t, os.WriteFile(path, []byte(Header+"\nyesterday,kyc_verified,,user-1\n"), 0o644))

	_, err := NewLog(path).Read()
	assert.ErrorContains(t, err, "row 2")
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	assert.ErrorContains(t, err, "expected 4 fields")
}

func TestTimestampFormat(t *testing.T) {
	row := MarshalEntry(testEntry())
	assert.Equal(t, "2026-01-15T10:30:00Z", row[0])
}
