package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omarluq/curryhoward/internal/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version, git commit, and build date.`,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), version.Short())
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version.String())
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the condensed version")
	rootCmd.AddCommand(versionCmd)
}
