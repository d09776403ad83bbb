// Package logging builds the structured logger shared by the CLI and the
// state store.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// ParseLevel maps a config level name to a pterm level.
func ParseLevel(name string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning", "":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "disabled":
		return pterm.LogLevelDisabled, nil
	}
	return pterm.LogLevelWarn, fmt.Errorf("unknown log level %q", name)
}

// New returns a logger writing to w at the named level.
func New(level string, w io.Writer) (*pterm.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return pterm.DefaultLogger.WithWriter(w).WithLevel(lvl).WithTime(false), nil
}

// Discard returns a logger that drops everything.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithWriter(io.Discard).WithLevel(pterm.LogLevelDisabled)
}
