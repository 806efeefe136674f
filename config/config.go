package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "16KB"

	defaultSessionMargin       = 0.10
	defaultRetention           = 30 * 24 * time.Hour
	defaultSweepSchedule       = "@hourly"
	defaultNotifyTimeout       = 10 * time.Second
	defaultDispatchConcurrency = 4
	defaultInProcessWorkers    = 4
	defaultPredictionTTL       = 10 * time.Minute
	defaultMQTTTopicPrefix     = "spoolmeters"
	defaultMetricsPath         = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey signs the account access tokens accepted on the query routes.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Firebase configuration for mobile push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// WebPush configuration for browser push notifications
	WebPush *WebPushConfig `json:"webPush" yaml:"webPush"`

	// PubSub configuration for alert event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis configuration for the prediction cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// MQTT configuration for device telemetry over a broker
	MQTT *MQTTConfig `json:"mqtt" yaml:"mqtt"`

	Telemetry *TelemetryConfig `json:"telemetry" yaml:"telemetry"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// WebPushConfig holds the VAPID key pair used to sign browser push requests.
type WebPushConfig struct {
	VAPIDPublicKey  string `json:"vapidPublicKey" yaml:"vapidPublicKey"`
	VAPIDPrivateKey string `json:"vapidPrivateKey" yaml:"vapidPrivateKey"`
	Subscriber      string `json:"subscriber" yaml:"subscriber"`
	TTLSeconds      int    `json:"ttlSeconds" yaml:"ttlSeconds"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google", "inprocess", or empty for no-op
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the notifier worker (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Number of dispatch workers for inprocess, and of forwarding workers for local and google
	InProcessWorkers int `json:"inProcessWorkers" yaml:"inProcessWorkers"`
}

// RedisConfig defines the prediction cache connection. An empty Addr disables the cache.
type RedisConfig struct {
	Addr          string        `json:"addr" yaml:"addr"`
	Password      string        `json:"password" yaml:"password"`
	DB            int           `json:"db" yaml:"db"`
	PredictionTTL time.Duration `json:"predictionTTL" yaml:"predictionTTL"`
}

// MQTTConfig defines the broker subscription used for device-originated telemetry.
type MQTTConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Broker      string `json:"broker" yaml:"broker"`
	ClientID    string `json:"clientId" yaml:"clientId"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	TopicPrefix string `json:"topicPrefix" yaml:"topicPrefix"`
	QoS         byte   `json:"qos" yaml:"qos"`
}

// TelemetryConfig tunes the ingestion, sweep and dispatch pipeline.
type TelemetryConfig struct {
	// Fraction margin used by session segmentation
	SessionMargin float64 `json:"sessionMargin" yaml:"sessionMargin"`

	// Usage log retention window
	Retention time.Duration `json:"retention" yaml:"retention"`

	// Cron spec for the retention sweep
	SweepSchedule string `json:"sweepSchedule" yaml:"sweepSchedule"`

	// Upper bound for one push delivery
	NotifyTimeout time.Duration `json:"notifyTimeout" yaml:"notifyTimeout"`

	// Concurrent deliveries per dispatch
	DispatchConcurrency int `json:"dispatchConcurrency" yaml:"dispatchConcurrency"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := path
			if !filepath.IsAbs(path) {
				abs = filepath.Join(pwd, path)
			}
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	searchPaths := []string{"config", "../config", "../../config"}
	if custom := os.Getenv("CONFIG_PATH"); custom != "" {
		searchPaths = append([]string{custom}, searchPaths...)
	}

	cfg, err := LoadWithEnv[Config]("config", searchPaths...)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills every optional section so callers never nil-check them.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Telemetry == nil {
		cfg.Telemetry = &TelemetryConfig{}
	}
	if cfg.Telemetry.SessionMargin <= 0 {
		cfg.Telemetry.SessionMargin = defaultSessionMargin
	}
	if cfg.Telemetry.Retention <= 0 {
		cfg.Telemetry.Retention = defaultRetention
	}
	if strings.TrimSpace(cfg.Telemetry.SweepSchedule) == "" {
		cfg.Telemetry.SweepSchedule = defaultSweepSchedule
	}
	if cfg.Telemetry.NotifyTimeout <= 0 {
		cfg.Telemetry.NotifyTimeout = defaultNotifyTimeout
	}
	if cfg.Telemetry.DispatchConcurrency <= 0 {
		cfg.Telemetry.DispatchConcurrency = defaultDispatchConcurrency
	}

	if cfg.PubSub != nil && cfg.PubSub.InProcessWorkers <= 0 {
		cfg.PubSub.InProcessWorkers = defaultInProcessWorkers
	}

	if cfg.Redis != nil && cfg.Redis.PredictionTTL <= 0 {
		cfg.Redis.PredictionTTL = defaultPredictionTTL
	}

	if cfg.MQTT != nil && strings.TrimSpace(cfg.MQTT.TopicPrefix) == "" {
		cfg.MQTT.TopicPrefix = defaultMQTTTopicPrefix
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if strings.TrimSpace(cfg.Metrics.Path) == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
