package logging_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/omarluq/curryhoward/internal/config"
	"github.com/omarluq/curryhoward/internal/logging"
)

func TestNewLoggerJSONFormat(t *testing.T) {
	t.Parallel()

	logger, err := logging.NewLogger(config.LoggingConfig{Level: "info", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	var buf bytes.Buffer
	logger = logger.Output(&buf)
	logger.Info().Str("exercise", "currying").Msg("*** currying: OK")

	line := buf.String()
	require.True(t, gjson.Valid(line), "log line is not JSON: %s", line)
	assert.Equal(t, "info", gjson.Get(line, "level").String())
	assert.Equal(t, "*** currying: OK", gjson.Get(line, "message").String())
	assert.Equal(t, "currying", gjson.Get(line, "exercise").String())
	assert.True(t, gjson.Get(line, "time").Exists())
}

func TestNewLoggerLevel(t *testing.T) {
	t.Parallel()

	logger, err := logging.NewLogger(config.LoggingConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	var buf bytes.Buffer
	logger = logger.Output(&buf)
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNewLoggerPrettyOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "curryhoward.log")
	logger, err := logging.NewLogger(config.LoggingConfig{Level: "debug", Output: path, Pretty: true})
	require.NoError(t, err)

	logger.Debug().Msg("hello")
	assert.FileExists(t, path)
}

func TestNewLoggerBadFile(t *testing.T) {
	t.Parallel()

	_, err := logging.NewLogger(config.LoggingConfig{Output: filepath.Join(t.TempDir(), "missing", "x.log")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log file")
}

func TestWithRunID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ctx := base.WithContext(context.Background())

	ctx = logging.WithRunID(ctx, "run-42")
	assert.Equal(t, "run-42", logging.RunID(ctx))

	zerolog.Ctx(ctx).Info().Msg("started")
	assert.Equal(t, "run-42", gjson.Get(buf.String(), "run_id").String())
}

func TestWithRunIDGeneratesUUID(t *testing.T) {
	t.Parallel()

	ctx := logging.WithRunID(context.Background(), "")
	id := logging.RunID(ctx)
	assert.Len(t, id, 36)
	assert.Equal(t, 4, strings.Count(id, "-"))
}

func TestRunIDMissing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, logging.RunID(context.Background()))
}
