package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("ZeroValueNotInitialized", func(t *testing.T) {
		l := Logger{}
		assert.False(t, l.IsInitialized())
	})

	t.Run("WritesJSONWithNamespace", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := NewLogger(buf, slog.LevelInfo)
		assert.True(t, l.IsInitialized())

		l.InfoNs(NsGateway, "statement executed", KV{"kind": "write"})

		record := map[string]any{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "INFO", record["level"])
		assert.Equal(t, "statement executed", record["msg"])
		assert.Equal(t, NsGateway, record["ns"])
		assert.Equal(t, "write", record["kind"])
	})

	t.Run("DiscardsBelowLevel", func(t *testing.T) {
		buf := &bytes.Buffer{}
		l := NewLogger(buf, slog.LevelWarn)

		l.Debug("debug message")
		l.Info("info message")
		assert.Empty(t, buf.String())

		l.Warn("warn message")
		assert.Contains(t, buf.String(), "warn message")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    slog.Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: slog.LevelDebug},
		{name: "info", input: "info", want: slog.LevelInfo},
		{name: "warn", input: "warn", want: slog.LevelWarn},
		{name: "warning alias", input: "warning", want: slog.LevelWarn},
		{name: "error uppercase", input: "ERROR", want: slog.LevelError},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "trace", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
