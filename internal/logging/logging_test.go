package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogOutput(t *testing.T, level Level, format Format, f func()) string {
	t.Helper()

	var buf bytes.Buffer

	oldLogger := defaultLogger
	InitLogger(level, format, &buf)

	t.Cleanup(func() {
		defaultLogger = oldLogger
	})

	f()

	return buf.String()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"", LevelInfo},
		{"warning", LevelWarn},
		{"error", LevelError},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "ParseLevel(%q)", tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	got, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, got)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestInitLogger_RespectsLevel(t *testing.T) {
	out := captureLogOutput(t, LevelError, FormatText, func() {
		Debug("hidden")
		Error("shown")
	})

	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestStoreRequest_JSONFields(t *testing.T) {
	ctx := WithOperation(context.Background(), "reprise")

	out := captureLogOutput(t, LevelDebug, FormatJSON, func() {
		StoreRequest(ctx, "http", "POST", "/reprise", 15*time.Millisecond, errors.New("boom"))
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &entry))

	assert.Equal(t, "store_request", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "reprise", entry["operation"])
	assert.Equal(t, "/reprise", entry["target"])
	assert.Equal(t, "boom", entry["error"])
}

func TestStoreRequest_SuccessLogsAtDebug(t *testing.T) {
	out := captureLogOutput(t, LevelInfo, FormatText, func() {
		StoreRequest(context.Background(), "sqlite", "SELECT", "motifs", time.Millisecond, nil)
	})

	assert.Empty(t, out)
}
