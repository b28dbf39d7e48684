package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestSetup_JSON(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	require.NoError(t, setup(&buf, "warn", "json"))
	log.Info().Msg("hidden")
	log.Warn().Str("component", "test").Msg("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.Contains(t, entry, "time")
}

func TestSetup_Console(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer

	require.NoError(t, setup(&buf, "debug", "console"))
	log.Debug().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetup_Invalid(t *testing.T) {
	restoreLogger(t)

	assert.Error(t, setup(&bytes.Buffer{}, "loud", "json"))
	assert.Error(t, setup(&bytes.Buffer{}, "info", "xml"))
}
