package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/omarluq/curryhoward/internal/config"
	"github.com/omarluq/curryhoward/internal/fp"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default config file",
	Long: `Generate a curryhoward configuration file holding the built-in defaults,
at ~/.config/curryhoward/curryhoward.yaml unless --output is given.`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().StringP("output", "o", "", "output path (default: ~/.config/curryhoward/curryhoward.<format>)")
	configInitCmd.Flags().String("format", string(config.FormatYAML), "file format: yaml or toml")
	configInitCmd.Flags().Bool("force", false, "overwrite existing config file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}

	return writeDefaultConfig(cmd.OutOrStdout(), output, config.Format(format), force)
}

func writeDefaultConfig(out io.Writer, output string, format config.Format, force bool) error {
	content, err := defaultConfigContent(format)
	if err != nil {
		return err
	}

	if output == "" {
		output, err = userConfigPath(string(format))
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
	}

	if _, err := os.Stat(output); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", output)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(output, content, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "✓ Config file created at %s\n", output)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Edit suite.only / suite.skip to pick exercises")
	fmt.Fprintf(out, "  2. Validate with: %s config validate --config %s\n", appName, output)
	fmt.Fprintf(out, "  3. Run with: %s run --config %s\n", appName, output)

	return nil
}

// defaultConfigContent renders the defaults with every setting spelled out.
func defaultConfigContent(format config.Format) ([]byte, error) {
	failFast := true
	memo := fp.DefaultMemoConfig()

	cfg := config.Default()
	cfg.Suite = config.SuiteConfig{FailFast: &failFast, Only: []string{}, Skip: []string{}}
	cfg.Cache = config.CacheConfig{
		NumCounters: memo.NumCounters,
		MaxCost:     memo.MaxCost,
		BufferItems: memo.BufferItems,
	}

	body, err := config.Marshal(cfg, format)
	if err != nil {
		return nil, err
	}

	header := "# curryhoward configuration\n# Values of the form ${VAR} are expanded from the environment.\n\n"
	return append([]byte(header), body...), nil
}
