package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/sentra-dev/sentra/internal/commands"
	"github.com/sentra-dev/sentra/internal/errhandler"
)

// Set via ldflags during build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// SENTRA_* overrides may live in a local .env file.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
	}

	rootCmd := commands.NewRootCommand(fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date))
	os.Exit(errhandler.Handle(os.Stderr, rootCmd.Execute()))
}
