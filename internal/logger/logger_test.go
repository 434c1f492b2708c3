package logger_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/powerdrill/internal/logger"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.WARN), logger.WithColors(false))

	log.Info("hidden")
	log.Warn("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "shown 1")
}

func TestLogger_PrefixAndSortedFields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithColors(false)).
		WithPrefix("game").
		WithFields(map[string]any{"variant": "square", "score": 3})

	log.Info("session ended")

	out := buf.String()
	assert.Contains(t, out, "[game]")
	assert.Contains(t, out, "session ended score=3 variant=square")
}

func TestLogger_DerivedLoggersShareOutput(t *testing.T) {
	var buf bytes.Buffer
	root := logger.New(logger.WithOutput(&buf), logger.WithColors(false))
	child := root.WithField("k", "v")

	root.Info("one")
	child.Info("two")

	assert.Contains(t, buf.String(), "one")
	assert.Contains(t, buf.String(), "two k=v")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.DEBUG, logger.ParseLevel("debug"))
	assert.Equal(t, logger.WARN, logger.ParseLevel("WARNING"))
	assert.Equal(t, logger.ERROR, logger.ParseLevel("ERROR"))
	assert.Equal(t, logger.INFO, logger.ParseLevel("nonsense"))

	assert.True(t, logger.ValidLevel("info"))
	assert.False(t, logger.ValidLevel("loud"))
}

func TestContextRoundTrip(t *testing.T) {
	log := logger.Discard().WithPrefix("ctx")
	ctx := logger.NewContext(context.Background(), log)

	assert.Same(t, log, logger.FromContext(ctx))
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drill.log")
	log, closer, err := logger.OpenFile(path, logger.DEBUG)
	require.NoError(t, err)
	log.Debug("to file")
	require.NoError(t, closer.Close())
	assert.FileExists(t, path)
}
