package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "")
	require.NoError(t, err)

	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())

	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_DebugLevelWritesFields(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug")
	require.NoError(t, err)

	l.Debug().Str("path", "config.json").Msg("loading config")

	out := buf.String()
	assert.Contains(t, out, "loading config")
	assert.Contains(t, out, "path=config.json")
	assert.Contains(t, out, "app=depviz")
}

func TestNew_InvalidLevel(t *testing.T) {
	for _, level := range []string{"loud", "verbose"} {
		t.Run(level, func(t *testing.T) {
			_, err := New(&bytes.Buffer{}, level)
			assert.Error(t, err)
		})
	}
}

func TestWithField_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info")
	require.NoError(t, err)

	l.WithField("stage", "merge").Info().Msg("done")

	assert.Contains(t, buf.String(), "stage=merge")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("should be discarded")

	assert.Empty(t, buf.String())
}
