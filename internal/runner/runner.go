// Package runner executes exercises and reports their outcomes.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/omarluq/curryhoward/internal/exercise"
	"github.com/omarluq/curryhoward/internal/logging"
	"github.com/omarluq/curryhoward/internal/ro"
)

// ErrPanic wraps a panic raised by an exercise.
var ErrPanic = errors.New("exercise panicked")

// Skip reasons recorded on skipped results.
const (
	reasonFailFast = "skipped after earlier failure"
	reasonCanceled = "run canceled"
)

// Options control a run.
type Options struct {
	// FailFast skips every exercise after the first failure.
	FailFast bool
}

// Runner executes exercises in order.
type Runner struct {
	logger zerolog.Logger
	opts   Options
}

// New creates a Runner.
func New(logger zerolog.Logger, opts Options) *Runner {
	return &Runner{logger: logger, opts: opts}
}

// Options returns the options the runner was created with.
func (r *Runner) Options() Options {
	return r.opts
}

// Run streams exercises through execution and logging and collects the report.
// Exercises left when ctx is canceled are reported as skipped and ctx.Err() is returned
// with the partial report.
func (r *Runner) Run(ctx context.Context, exercises []exercise.Exercise) (*Report, error) {
	runID := uuid.NewString()
	ctx = logging.WithRunID(r.logger.WithContext(ctx), runID)
	logger := zerolog.Ctx(ctx)

	logger.Debug().Int("exercises", len(exercises)).Bool("fail_fast", r.opts.FailFast).Msg("run started")
	started := time.Now()

	halted := false
	step := func(e exercise.Exercise) Result {
		switch {
		case ctx.Err() != nil:
			return skipped(e, reasonCanceled)
		case halted:
			return skipped(e, reasonFailFast)
		}

		res := execute(e)
		if res.Status == StatusFailed && r.opts.FailFast {
			halted = true
		}
		return res
	}

	stream := ro.TapStream(
		ro.MapStream(ro.StreamFromSlice(exercises), step),
		func(res Result) { logResult(logger, res) },
	)

	results, err := ro.Collect(stream)
	if err != nil {
		return nil, fmt.Errorf("run stream failed: %w", err)
	}

	report := newReport(runID, results, time.Since(started))
	logger.Info().
		Int("passed", report.Passed).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Dur("elapsed", report.Elapsed).
		Msg("run finished")

	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

// execute runs one exercise, converting a panic into a failure.
func execute(e exercise.Exercise) (res Result) {
	res = Result{Name: e.Name, Section: e.Section}
	started := time.Now()

	defer func() {
		res.Duration = time.Since(started)
		if p := recover(); p != nil {
			res.Status = StatusFailed
			res.Err = fmt.Errorf("%w: %v", ErrPanic, p)
		}
	}()

	if err := e.Run(); err != nil {
		res.Status = StatusFailed
		res.Err = err
		return res
	}
	res.Status = StatusPassed
	return res
}

func skipped(e exercise.Exercise, reason string) Result {
	return Result{Name: e.Name, Section: e.Section, Status: StatusSkipped, Reason: reason}
}

func logResult(logger *zerolog.Logger, res Result) {
	switch res.Status {
	case StatusPassed:
		logger.Info().
			Str("exercise", res.Name).
			Dur("duration", res.Duration).
			Msgf("*** %s: OK", res.Name)
	case StatusFailed:
		logger.Error().
			Err(res.Err).
			Str("exercise", res.Name).
			Msgf("*** %s: FAILED", res.Name)
	case StatusSkipped:
		logger.Debug().
			Str("exercise", res.Name).
			Str("reason", res.Reason).
			Msgf("*** %s: skipped", res.Name)
	}
}
