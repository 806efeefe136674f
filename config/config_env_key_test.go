package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"telemetry": map[string]any{
			"sessionMargin":       0.1,
			"dispatchConcurrency": 4,
		},
		"redis": map[string]any{
			"predictionTTL": "10m",
		},
		"webPush": map[string]any{
			"vapidPrivateKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "TELEMETRY_SESSIONMARGIN", want: "telemetry.sessionMargin"},
		{envKey: "TELEMETRY_DISPATCHCONCURRENCY", want: "telemetry.dispatchConcurrency"},
		{envKey: "REDIS_PREDICTIONTTL", want: "redis.predictionTTL"},
		{envKey: "WEBPUSH_VAPIDPRIVATEKEY", want: "webPush.vapidPrivateKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{
		PubSub: &PubSubConfig{Provider: "inprocess"},
		Redis:  &RedisConfig{Addr: "localhost:6379"},
		MQTT:   &MQTTConfig{Enabled: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Telemetry)
	assert.InDelta(t, 0.10, cfg.Telemetry.SessionMargin, 1e-12)
	assert.Equal(t, 30*24*time.Hour, cfg.Telemetry.Retention)
	assert.Equal(t, "@hourly", cfg.Telemetry.SweepSchedule)
	assert.Equal(t, defaultNotifyTimeout, cfg.Telemetry.NotifyTimeout)
	assert.Equal(t, defaultDispatchConcurrency, cfg.Telemetry.DispatchConcurrency)
	assert.Equal(t, defaultInProcessWorkers, cfg.PubSub.InProcessWorkers)
	assert.Equal(t, defaultPredictionTTL, cfg.Redis.PredictionTTL)
	assert.Equal(t, "spoolmeters", cfg.MQTT.TopicPrefix)
	require.NotNil(t, cfg.Metrics)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Telemetry: &TelemetryConfig{
			SessionMargin:       0.25,
			Retention:           48 * time.Hour,
			SweepSchedule:       "@every 5m",
			NotifyTimeout:       time.Second,
			DispatchConcurrency: 16,
		},
	}

	applyDefaults(cfg)

	assert.InDelta(t, 0.25, cfg.Telemetry.SessionMargin, 1e-12)
	assert.Equal(t, 48*time.Hour, cfg.Telemetry.Retention)
	assert.Equal(t, "@every 5m", cfg.Telemetry.SweepSchedule)
	assert.Equal(t, time.Second, cfg.Telemetry.NotifyTimeout)
	assert.Equal(t, 16, cfg.Telemetry.DispatchConcurrency)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
env:
  env: develop
http:
  port: 8080
telemetry:
  sessionMargin: 0.1
  retention: 720h
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yamlBody, 0o600))

	t.Setenv("TELEMETRY_SESSIONMARGIN", "0.2")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Telemetry)
	assert.InDelta(t, 0.2, cfg.Telemetry.SessionMargin, 1e-12)
	assert.Equal(t, 720*time.Hour, cfg.Telemetry.Retention)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
