package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/omarluq/curryhoward/internal/config"
	"github.com/omarluq/curryhoward/internal/di"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the configuration file without running anything.
Checks syntax, field values, and that every name in suite.only and suite.skip
matches an exercise or section.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return executeConfigValidate(cmd.OutOrStdout(), resolveConfigPath())
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

func executeConfigValidate(out io.Writer, configPath string) error {
	if _, err := config.Load(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(out, "✗ No config file at %s (built-in defaults apply)\n", configPath)
		} else {
			fmt.Fprintf(out, "✗ Config validation failed: %s\n", err)
		}
		return err
	}

	container, err := di.NewContainer(configPath)
	if err != nil {
		return err
	}
	defer func() { _ = container.Shutdown() }()

	cfgSvc, err := di.Invoke[*di.ConfigService](container)
	if err == nil {
		err = checkSelection(container, cfgSvc.Get())
	}
	if err == nil {
		err = container.HealthCheck()
	}
	if err != nil {
		fmt.Fprintf(out, "✗ Config validation failed: %s\n", err)
		return err
	}

	fmt.Fprintf(out, "✓ %s is valid\n", configPath)
	return nil
}
