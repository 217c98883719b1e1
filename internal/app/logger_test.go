package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("json format emits structured records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := newLogger("info", "json", &buf)

		logger.Info("planning build", "tasks", 3)

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "planning build", record["msg"])
		assert.Equal(t, float64(3), record["tasks"])
	})

	t.Run("text format is the default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := newLogger("info", "text", &buf)

		logger.Info("planning build")

		assert.Contains(t, buf.String(), "msg=\"planning build\"")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := newLogger("loud", "text", &buf)

		logger.Debug("hidden")
		logger.Info("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("debug level enables debug records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := newLogger("debug", "text", &buf)

		logger.Debug("verbose detail")

		assert.Contains(t, buf.String(), "verbose detail")
	})
}
