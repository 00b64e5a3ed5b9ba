package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"path": "wiggly", "segments": 40}).Info("sampled")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "sampled", entries[0]["message"])
	assert.Equal(t, "wiggly", entries[0]["path"])
	assert.Equal(t, float64(40), entries[0]["segments"])
	assert.Equal(t, "info", entries[0]["level"])
	assert.Contains(t, entries[0], "time")
}

func TestLoggerLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  []string
	}{
		{"", []string{"info", "warn", "error"}},
		{"debug", []string{"debug", "info", "warn", "error"}},
		{"WARN", []string{"warn", "error"}},
		{"error", []string{"error"}},
	}
	for _, tt := range tests {
		buf := &bytes.Buffer{}
		log, err := New(Options{Level: tt.level, Writer: buf})
		require.NoError(t, err)

		log.Debug("d")
		log.Info("i")
		log.Warn("w")
		log.Error(nil, "e")

		var got []string
		for _, entry := range decode(t, buf) {
			got = append(got, entry["level"].(string))
		}
		assert.Equal(t, tt.want, got, "level %q", tt.level)
	}
}

func TestLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("boom"), "watch failed")
	entries := decode(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "boom", entries[0]["error"])
	assert.Equal(t, "watch failed", entries[0]["message"])
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNilAndNop(t *testing.T) {
	t.Parallel()

	var log *Logger
	assert.NotPanics(t, func() {
		log.Info("ignored")
		log.Error(errors.New("x"), "ignored")
	})
	assert.Nil(t, log.WithFields(map[string]any{"a": 1}))
	assert.Equal(t, zerolog.Disabled, log.Level())

	assert.NotPanics(t, func() { Nop().Warn("ignored") })
}
