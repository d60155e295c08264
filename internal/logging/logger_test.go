package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"navalduel/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"loud":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_NamedOutputs(t *testing.T) {
	for _, out := range []string{"stdout", "stderr"} {
		log, err := New(config.LoggingConfig{Level: "warn", Format: "text", Output: out})

		require.NoError(t, err, out)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	}
}

func TestNewWithWriter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	log.Debug("hidden")
	log.Info("battle finished", zap.String("outcome", "victory"), zap.Int("rounds", 12))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "battle finished", line["msg"])
	assert.Equal(t, "victory", line["outcome"])
	assert.Equal(t, float64(12), line["rounds"])
}

func TestNewWithWriter_ConsoleFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)

	log.Info("dropped")
	log.Warn("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
