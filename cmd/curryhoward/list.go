package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/omarluq/curryhoward/internal/di"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the exercises",
	Long:  `List every exercise with its section and a short summary, in run order.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return executeList(cmd.OutOrStdout(), resolveConfigPath())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func executeList(out io.Writer, configPath string) error {
	container, err := di.NewContainer(configPath)
	if err != nil {
		return err
	}
	defer func() { _ = container.Shutdown() }()

	suite, err := di.Invoke[*di.SuiteService](container)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SECTION\tEXERCISE\tSUMMARY")
	for _, e := range suite.Exercises {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Section, e.Name, e.Summary)
	}
	return tw.Flush()
}
