// Package main is the entry point for curryhoward.
package main

import (
	"context"
	"os"
	"path/filepath"

	"charm.land/fang/v2"
	"github.com/spf13/cobra"
)

const (
	appName           = "curryhoward"
	defaultConfigFile = "curryhoward.yaml"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Self-checking functional programming exercises in Go",
	Long: `curryhoward walks through currying, composition, list pipelines and the
Option/Either functors. Every exercise computes its answer the plain way and the
functional way and checks both against the expected value.

Running curryhoward without a subcommand is the same as "curryhoward run".`,
	SilenceUsage: true,
	RunE:         runSuite,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file path (default: ./"+defaultConfigFile+" or ~/.config/"+appName+"/"+defaultConfigFile+")")
	addRunFlags(rootCmd)
}

func main() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

// resolveConfigPath returns --config if set, otherwise the first default location that exists.
func resolveConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return findConfigIn(wd, home)
}

// findConfigIn checks workDir, then home/.config/curryhoward. When neither
// holds a config the default name is returned; loading it yields the defaults.
func findConfigIn(workDir, home string) string {
	local := filepath.Join(workDir, defaultConfigFile)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	if home != "" {
		p := filepath.Join(home, ".config", appName, defaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return defaultConfigFile
}

// userConfigPath is where `config init` writes by default.
func userConfigPath(ext string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, appName+"."+ext), nil
}
