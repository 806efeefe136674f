package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"spoolmeter/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSONHandler(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.ServiceName = "spoolmeter"
	cfg.Env.Log.Level = "warn"

	logger, err := New(Params{Config: cfg, Output: &buf})
	require.NoError(t, err)

	logger.Info("[Ingest] dropped")
	assert.Empty(t, buf.String())

	logger.Warn("[Ingest] cache invalidation failed", slog.String("spool_meter_id", "SM-1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "spoolmeter", line["service"])
	assert.Equal(t, "SM-1", line["spool_meter_id"])
	assert.Equal(t, "WARN", line["level"])
}

func TestNew_PrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	logger, err := New(Params{Config: cfg, Output: &buf})
	require.NoError(t, err)

	logger.Info("[Sweep] done", slog.Int64("removed", 2))
	assert.Contains(t, buf.String(), `msg="[Sweep] done" removed=2`)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "loud"

	_, err := New(Params{Config: cfg})
	require.Error(t, err)
}
