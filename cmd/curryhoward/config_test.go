package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarluq/curryhoward/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestConfigValidateValid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "curryhoward.yaml")
	writeFile(t, path, "suite:\n  only: [films, upname]\nlogging:\n  level: error\n")

	var out bytes.Buffer
	require.NoError(t, executeConfigValidate(&out, path))
	assert.Contains(t, out.String(), "✓")
	assert.Contains(t, out.String(), "is valid")
}

func TestConfigValidateUnknownName(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "curryhoward.yaml")
	writeFile(t, path, "suite:\n  skip: [lenses]\nlogging:\n  level: error\n")

	var out bytes.Buffer
	err := executeConfigValidate(&out, path)
	require.ErrorIs(t, err, errUnknownExercise)
	assert.Contains(t, out.String(), "✗ Config validation failed")
	assert.Contains(t, out.String(), "lenses")
}

func TestConfigValidateBadValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "curryhoward.toml")
	writeFile(t, path, "[output]\nformat = \"pdf\"\n")

	var out bytes.Buffer
	require.Error(t, executeConfigValidate(&out, path))
	assert.Contains(t, out.String(), "output.format")
}

func TestConfigValidateUnwritableLog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "curryhoward.yaml")
	writeFile(t, path, "logging:\n  output: "+filepath.Join(dir, "missing", "run.log")+"\n")

	var out bytes.Buffer
	require.Error(t, executeConfigValidate(&out, path))
	assert.Contains(t, out.String(), "logger service unhealthy")
}

func TestConfigValidateMissingFile(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.Error(t, executeConfigValidate(&out, filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Contains(t, out.String(), "No config file")
}

func TestWriteDefaultConfig(t *testing.T) {
	t.Parallel()

	for _, format := range []config.Format{config.FormatYAML, config.FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "nested", "curryhoward."+string(format))
			var out bytes.Buffer
			require.NoError(t, writeDefaultConfig(&out, path, format, false))
			assert.Contains(t, out.String(), "Config file created")

			cfg, err := config.Load(path)
			require.NoError(t, err)
			require.NoError(t, cfg.Validate())
			assert.True(t, cfg.Suite.GetFailFastOption().IsPresent())
			assert.Equal(t, config.OutputText, cfg.Output.Format)

			var validateOut bytes.Buffer
			require.NoError(t, executeConfigValidate(&validateOut, path))
		})
	}
}

func TestWriteDefaultConfigRefusesOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "curryhoward.yaml")
	writeFile(t, path, "existing: content")

	err := writeDefaultConfig(&bytes.Buffer{}, path, config.FormatYAML, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	require.NoError(t, writeDefaultConfig(&bytes.Buffer{}, path, config.FormatYAML, true))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# curryhoward configuration"))
}

func TestWriteDefaultConfigUnsupportedFormat(t *testing.T) {
	t.Parallel()

	err := writeDefaultConfig(&bytes.Buffer{}, filepath.Join(t.TempDir(), "c.json"), config.Format("json"), false)
	require.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestRunConfigInitFlags(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "init"}
	cmd.Flags().StringP("output", "o", "", "")
	cmd.Flags().String("format", "toml", "")
	cmd.Flags().Bool("force", false, "")

	path := filepath.Join(t.TempDir(), "curryhoward.toml")
	require.NoError(t, cmd.Flags().Set("output", path))

	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, runConfigInit(cmd, nil))
	assert.FileExists(t, path)
}
