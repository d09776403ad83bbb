package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sentra-dev/sentra/internal/config"
	"github.com/sentra-dev/sentra/internal/storage"
)

func newInitCommand() *cobra.Command {
	var driver string
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default sentra.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			path, err := runInit(absDir, driver, force)
			if err != nil {
				return err
			}
			success(cmd, "Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&driver, "driver", storage.DriverFile, "storage driver: file, sqlite or memory")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")

	return cmd
}

func runInit(dir, driver string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, DefaultConfigFile)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("checking config: %w", err)
	}

	cfg := config.Default()
	cfg.Storage.Driver = driver
	switch driver {
	case storage.DriverSQLite:
		cfg.Storage.Path = "sentra.db"
	case storage.DriverMemory:
		cfg.Storage.Path = ""
	}
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	if err := config.Save(path, cfg); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}
	return path, nil
}
