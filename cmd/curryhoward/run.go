package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/omarluq/curryhoward/internal/config"
	"github.com/omarluq/curryhoward/internal/di"
	"github.com/omarluq/curryhoward/internal/logging"
	"github.com/omarluq/curryhoward/internal/ro"
)

var errUnknownExercise = errors.New("unknown exercise or section")

type runOptions struct {
	format   string
	only     []string
	skip     []string
	failFast bool
	watch    bool
	debug    bool
}

var runOpts runOptions

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the exercises",
	Long: `Run the selected exercises and print a report.

Selections from the config file can be narrowed with --only and --skip, which
accept exercise names and section names. The exit code is non-zero when any
exercise fails.`,
	Example: `  curryhoward run
  curryhoward run --only films --format json
  curryhoward run --skip functors --fail-fast=false
  curryhoward run --watch`,
	RunE: runSuite,
}

func init() {
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func addRunFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSliceVar(&runOpts.only, "only", nil, "run only these exercises or sections")
	f.StringSliceVar(&runOpts.skip, "skip", nil, "skip these exercises or sections")
	f.StringVar(&runOpts.format, "format", "", "report format: text or json")
	f.BoolVar(&runOpts.failFast, "fail-fast", true, "skip remaining exercises after the first failure")
	f.BoolVar(&runOpts.watch, "watch", false, "re-run whenever the config file changes")
	f.BoolVar(&runOpts.debug, "debug", false, "enable debug logging")
}

// flagOverrides turns the flags the user set into config overrides.
func flagOverrides(cmd *cobra.Command, opts runOptions) []di.Override {
	f := cmd.Flags()
	var overrides []di.Override

	if f.Changed("only") {
		only := opts.only
		overrides = append(overrides, func(c *config.Config) { c.Suite.Only = only })
	}
	if f.Changed("skip") {
		skip := opts.skip
		overrides = append(overrides, func(c *config.Config) { c.Suite.Skip = skip })
	}
	if f.Changed("format") {
		format := opts.format
		overrides = append(overrides, func(c *config.Config) { c.Output.Format = format })
	}
	if f.Changed("fail-fast") {
		failFast := opts.failFast
		overrides = append(overrides, func(c *config.Config) { c.Suite.FailFast = &failFast })
	}
	if opts.debug {
		overrides = append(overrides, func(c *config.Config) { c.Logging.EnableDebug() })
	}

	return overrides
}

func runSuite(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return executeRun(ctx, cmd.OutOrStdout(), resolveConfigPath(), runOpts.watch, flagOverrides(cmd, runOpts)...)
}

// executeRun wires the container, runs the suite once and, in watch mode,
// again after every config change until a shutdown signal arrives.
func executeRun(ctx context.Context, out io.Writer, configPath string, watch bool, overrides ...di.Override) error {
	container, err := di.NewContainer(configPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := container.Shutdown(); err != nil {
			log.Warn().Err(err).Msg("container shutdown")
		}
	}()

	cfgSvc, err := di.Invoke[*di.ConfigService](container)
	if err != nil {
		return err
	}
	cfgSvc.Apply(overrides...)

	if err := checkSelection(container, cfgSvc.Get()); err != nil {
		return err
	}
	if err := container.HealthCheck(); err != nil {
		return err
	}

	logSvc, err := di.Invoke[*di.LoggerService](container)
	if err != nil {
		return err
	}
	logging.Install(*logSvc.Logger)

	runSvc, err := di.Invoke[*di.RunnerService](container)
	if err != nil {
		return err
	}

	runErr := runOnce(ctx, out, runSvc, cfgSvc)
	if !watch {
		return runErr
	}
	return watchAndRerun(ctx, out, runSvc, cfgSvc)
}

// checkSelection validates the effective config, including names given by flags.
func checkSelection(container *di.Container, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	suite, err := di.Invoke[*di.SuiteService](container)
	if err != nil {
		return err
	}
	unknown := suite.Unknown(append(append([]string{}, cfg.Suite.Only...), cfg.Suite.Skip...))
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s (see `%s list`)", errUnknownExercise, strings.Join(unknown, ", "), appName)
	}
	return nil
}

func runOnce(ctx context.Context, out io.Writer, runSvc *di.RunnerService, cfgSvc *di.ConfigService) error {
	report, err := runSvc.Run(ctx)
	if report == nil {
		return err
	}
	if werr := report.Write(out, cfgSvc.Get().Output.GetEffectiveFormat()); werr != nil {
		return werr
	}
	if err != nil {
		return err
	}
	return report.Err()
}

func watchAndRerun(ctx context.Context, out io.Writer, runSvc *di.RunnerService, cfgSvc *di.ConfigService) error {
	var mu sync.Mutex
	rerun := func(_ *config.Config) {
		mu.Lock()
		defer mu.Unlock()
		if err := runOnce(ctx, out, runSvc, cfgSvc); err != nil {
			log.Warn().Err(err).Msg("run failed")
		}
	}

	if err := cfgSvc.StartWatching(ctx, rerun); err != nil {
		return err
	}
	log.Info().Str("path", cfgSvc.Path()).Msg("watching config, press Ctrl+C to stop")

	sig, err := ro.WaitForShutdown(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	log.Info().Interface("signal", sig).Msg("watch stopped")
	return nil
}
