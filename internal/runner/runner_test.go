package runner_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/omarluq/curryhoward/internal/check"
	"github.com/omarluq/curryhoward/internal/exercise"
	"github.com/omarluq/curryhoward/internal/fixtures"
	"github.com/omarluq/curryhoward/internal/fp"
	"github.com/omarluq/curryhoward/internal/runner"
)

func passing(name string) exercise.Exercise {
	return exercise.Exercise{Name: name, Section: "test", Run: func() error { return nil }}
}

func failing(name string) exercise.Exercise {
	return exercise.Exercise{Name: name, Section: "test", Run: func() error {
		return check.Equal(1, 2)
	}}
}

func panicking(name string) exercise.Exercise {
	return exercise.Exercise{Name: name, Section: "test", Run: func() error {
		var xs []int
		_ = xs[3]
		return nil
	}}
}

func statuses(report *runner.Report) []runner.Status {
	return fp.Map(func(r runner.Result) runner.Status { return r.Status })(report.Results)
}

func TestRunAllPass(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	r := runner.New(zerolog.New(&logs), runner.Options{FailFast: true})

	report, err := r.Run(context.Background(), []exercise.Exercise{passing("a"), passing("b")})
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.NoError(t, report.Err())
	assert.Equal(t, 2, report.Passed)
	assert.Len(t, report.RunID, 36)
	assert.Contains(t, logs.String(), "*** a: OK")
	assert.Contains(t, logs.String(), "*** b: OK")
	assert.Contains(t, logs.String(), report.RunID)
}

func TestRunFailFastSkipsRemaining(t *testing.T) {
	t.Parallel()

	r := runner.New(zerolog.Nop(), runner.Options{FailFast: true})

	report, err := r.Run(context.Background(), []exercise.Exercise{
		passing("a"), failing("b"), passing("c"), passing("d"),
	})
	require.NoError(t, err)

	assert.Equal(t, []runner.Status{
		runner.StatusPassed, runner.StatusFailed, runner.StatusSkipped, runner.StatusSkipped,
	}, statuses(report))
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 2, report.Skipped)
	assert.ErrorIs(t, report.Results[1].Err, check.ErrMismatch)

	err = report.Err()
	require.ErrorIs(t, err, runner.ErrFailed)
	assert.Contains(t, err.Error(), "b")
}

func TestRunWithoutFailFastRunsEverything(t *testing.T) {
	t.Parallel()

	r := runner.New(zerolog.Nop(), runner.Options{})

	report, err := r.Run(context.Background(), []exercise.Exercise{
		failing("a"), passing("b"), failing("c"),
	})
	require.NoError(t, err)

	assert.Equal(t, []runner.Status{
		runner.StatusFailed, runner.StatusPassed, runner.StatusFailed,
	}, statuses(report))
	assert.Equal(t, 2, report.Failed)
	assert.EqualError(t, report.Err(), "exercises failed: a, c")
}

func TestRunRecoversPanics(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	r := runner.New(zerolog.New(&logs), runner.Options{FailFast: false})

	report, err := r.Run(context.Background(), []exercise.Exercise{panicking("boom"), passing("after")})
	require.NoError(t, err)

	require.ErrorIs(t, report.Results[0].Err, runner.ErrPanic)
	assert.Contains(t, report.Results[0].Err.Error(), "index out of range")
	assert.Equal(t, runner.StatusPassed, report.Results[1].Status)
	assert.Contains(t, logs.String(), "*** boom: FAILED")
}

func TestRunCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.New(zerolog.Nop(), runner.Options{FailFast: true})
	report, err := r.Run(ctx, []exercise.Exercise{passing("a"), passing("b")})

	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, "run canceled", report.Results[0].Reason)
}

func TestRunCancelMidway(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopper := exercise.Exercise{Name: "stop", Section: "test", Run: func() error {
		cancel()
		return nil
	}}

	r := runner.New(zerolog.Nop(), runner.Options{})
	report, err := r.Run(ctx, []exercise.Exercise{passing("a"), stopper, passing("c")})

	require.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, []runner.Status{
		runner.StatusPassed, runner.StatusPassed, runner.StatusSkipped,
	}, statuses(report))
}

func TestRunEmpty(t *testing.T) {
	t.Parallel()

	report, err := runner.New(zerolog.Nop(), runner.Options{}).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, report.OK())
	assert.Empty(t, report.Results)
}

func TestRunWholeCatalogue(t *testing.T) {
	t.Parallel()

	lib, err := fixtures.NewLibrary(zerolog.Nop(), fp.DefaultMemoConfig())
	require.NoError(t, err)
	t.Cleanup(lib.Close)

	var out bytes.Buffer
	report, err := runner.New(zerolog.Nop(), runner.Options{FailFast: true}).
		Run(context.Background(), exercise.Catalogue(lib))
	require.NoError(t, err)
	require.NoError(t, report.Err())
	require.NoError(t, report.WriteJSON(&out))

	doc := out.String()
	assert.True(t, gjson.Get(doc, "ok").Bool())
	assert.Equal(t, int64(16), gjson.Get(doc, "summary.passed").Int())
	assert.Equal(t, "currying", gjson.Get(doc, "results.0.name").String())
	assert.Equal(t, "safe-parse", gjson.Get(doc, "results.15.name").String())
}

func TestOptions(t *testing.T) {
	t.Parallel()

	r := runner.New(zerolog.Nop(), runner.Options{FailFast: true})
	assert.True(t, r.Options().FailFast)
}
