package logging

import (
	"bytes"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want pterm.LogLevel
	}{
		{"debug", pterm.LogLevelDebug},
		{"INFO", pterm.LogLevelInfo},
		{"", pterm.LogLevelWarn},
		{"warning", pterm.LogLevelWarn},
		{"error", pterm.LogLevelError},
		{"off", pterm.LogLevelDisabled},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewWritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("error", &buf)
	require.NoError(t, err)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Error("failed to save state", log.Args("key", "sentra_app_state"))
	assert.Contains(t, buf.String(), "failed to save state")
	assert.Contains(t, buf.String(), "sentra_app_state")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error("nothing", Discard().Args("err", "x"))
	})
}
