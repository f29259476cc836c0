package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/omarluq/curryhoward/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), defaultConfigFile)
	writeFile(t, path, content)
	return path
}

const quietConfig = `
logging:
  level: error
  format: json
`

func TestExecuteRunText(t *testing.T) {
	var out bytes.Buffer
	err := executeRun(context.Background(), &out, writeConfigFile(t, quietConfig), false)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "✓ currying")
	assert.Contains(t, out.String(), "✓ safe-parse")
	assert.Contains(t, out.String(), "16 passed, 0 failed, 0 skipped")
}

func TestExecuteRunJSONWithOverrides(t *testing.T) {
	cmd := &cobra.Command{Use: "run"}
	addRunFlags(cmd)
	require.NoError(t, cmd.Flags().Set("only", "functors"))
	require.NoError(t, cmd.Flags().Set("skip", "safe-parse"))
	require.NoError(t, cmd.Flags().Set("format", "json"))

	var out bytes.Buffer
	err := executeRun(context.Background(), &out, writeConfigFile(t, quietConfig), false, flagOverrides(cmd, runOpts)...)
	require.NoError(t, err)

	doc := out.String()
	require.True(t, gjson.Valid(doc), doc)
	assert.Equal(t, int64(5), gjson.Get(doc, "summary.passed").Int())
	assert.Equal(t, "box", gjson.Get(doc, "results.0.name").String())
	assert.Equal(t, "first-letters", gjson.Get(doc, "results.4.name").String())
}

func TestExecuteRunMissingConfigUsesDefaults(t *testing.T) {
	var out bytes.Buffer
	only := func(c *config.Config) {
		c.Suite.Only = []string{"currying"}
		c.Logging.Level = config.LevelError
	}
	err := executeRun(context.Background(), &out, filepath.Join(t.TempDir(), "absent.yaml"), false, only)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "1 passed")
}

func TestExecuteRunUnknownName(t *testing.T) {
	var out bytes.Buffer
	override := func(c *config.Config) { c.Suite.Only = []string{"monads"} }

	err := executeRun(context.Background(), &out, writeConfigFile(t, quietConfig), false, override)
	require.ErrorIs(t, err, errUnknownExercise)
	assert.Contains(t, err.Error(), "monads")
	assert.Empty(t, out.String())
}

func TestExecuteRunInvalidFormatOverride(t *testing.T) {
	var out bytes.Buffer
	override := func(c *config.Config) { c.Output.Format = "xml" }

	err := executeRun(context.Background(), &out, writeConfigFile(t, quietConfig), false, override)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

func TestExecuteRunInvalidConfigFile(t *testing.T) {
	var out bytes.Buffer
	err := executeRun(context.Background(), &out, writeConfigFile(t, "logging:\n  level: loud\n"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestExecuteRunUnwritableLog(t *testing.T) {
	var out bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "missing", "run.log")
	err := executeRun(context.Background(), &out, writeConfigFile(t, "logging:\n  output: "+logPath+"\n"), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger service unhealthy")
	assert.Empty(t, out.String())
}

func TestExecuteRunWatchStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer
	done := make(chan error, 1)

	override := func(c *config.Config) { c.Suite.Only = []string{"box"} }
	go func() {
		done <- executeRun(ctx, &out, writeConfigFile(t, quietConfig), true, override)
	}()

	cancel()
	require.NoError(t, <-done)
}

func TestFlagOverrides(t *testing.T) {
	cmd := &cobra.Command{Use: "run"}
	addRunFlags(cmd)

	assert.Empty(t, flagOverrides(cmd, runOptions{}), "unset flags leave the config alone")

	require.NoError(t, cmd.Flags().Set("fail-fast", "false"))
	cfg := config.Default()
	for _, o := range flagOverrides(cmd, runOptions{failFast: false, debug: true}) {
		o(cfg)
	}
	assert.False(t, cfg.Suite.IsFailFast())
	assert.Equal(t, config.LevelDebug, cfg.Logging.Level)
}
