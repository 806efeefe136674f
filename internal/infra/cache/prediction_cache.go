// Package cache keeps computed run-out predictions in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"spoolmeter/config"
	"spoolmeter/internal/domain/entity"
	"spoolmeter/internal/domain/lifecycle"
	"spoolmeter/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	entryPrefix = "spoolmeter:prediction:entry:"
	genPrefix   = "spoolmeter:prediction:gen:"
	epochKey    = "spoolmeter:prediction:epoch"
	defaultTTL  = 10 * time.Minute
)

// redisPredictionCache versions entries by a global epoch and a per-meter generation.
// Invalidation bumps a counter instead of deleting, and superseded entries age out by TTL.
type redisPredictionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPredictionCache stores predictions under
// "spoolmeter:prediction:entry:<id>:<epoch>.<gen>" for ttl.
func NewRedisPredictionCache(client *redis.Client, ttl time.Duration) service.PredictionCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisPredictionCache{client: client, ttl: ttl}
}

func entryKey(spoolMeterID string, version service.PredictionVersion) string {
	return entryPrefix + spoolMeterID + ":" + string(version)
}

func genKey(spoolMeterID string) string {
	return genPrefix + spoolMeterID
}

// counter reads an MGET slot; an absent counter is generation zero.
func counter(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return "0"
	}

	return s
}

func (c *redisPredictionCache) version(ctx context.Context, spoolMeterID string) (service.PredictionVersion, error) {
	vals, err := c.client.MGet(ctx, epochKey, genKey(spoolMeterID)).Result()
	if err != nil {
		return "", errors.Wrap(err, "redis read prediction version")
	}

	return service.PredictionVersion(counter(vals[0]) + "." + counter(vals[1])), nil
}

// Get returns (nil, version, nil) on a miss.
func (c *redisPredictionCache) Get(ctx context.Context, spoolMeterID string) (*entity.Prediction, service.PredictionVersion, error) {
	version, err := c.version(ctx, spoolMeterID)
	if err != nil {
		return nil, "", err
	}

	raw, err := c.client.Get(ctx, entryKey(spoolMeterID, version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, version, nil
	}
	if err != nil {
		return nil, "", errors.Wrap(err, "redis get prediction")
	}

	var prediction entity.Prediction
	if err := json.Unmarshal(raw, &prediction); err != nil {
		return nil, "", errors.Wrap(err, "decode cached prediction")
	}

	return &prediction, version, nil
}

// Set is a no-op without a version.
func (c *redisPredictionCache) Set(ctx context.Context, version service.PredictionVersion, prediction *entity.Prediction) error {
	if version == "" {
		return nil
	}

	raw, err := json.Marshal(prediction)
	if err != nil {
		return errors.Wrap(err, "encode prediction")
	}

	return errors.Wrap(c.client.Set(ctx, entryKey(prediction.SpoolMeterID, version), raw, c.ttl).Err(), "redis set prediction")
}

func (c *redisPredictionCache) Invalidate(ctx context.Context, spoolMeterID string) error {
	return errors.Wrap(c.client.Incr(ctx, genKey(spoolMeterID)).Err(), "redis bump prediction generation")
}

func (c *redisPredictionCache) InvalidateAll(ctx context.Context) error {
	return errors.Wrap(c.client.Incr(ctx, epochKey).Err(), "redis bump prediction epoch")
}

// noopPredictionCache always misses.
type noopPredictionCache struct{}

// NewNoopPredictionCache returns a cache that stores nothing.
func NewNoopPredictionCache() service.PredictionCache {
	return noopPredictionCache{}
}

func (noopPredictionCache) Get(context.Context, string) (*entity.Prediction, service.PredictionVersion, error) {
	return nil, "", nil
}

func (noopPredictionCache) Set(context.Context, service.PredictionVersion, *entity.Prediction) error {
	return nil
}

func (noopPredictionCache) Invalidate(context.Context, string) error { return nil }

func (noopPredictionCache) InvalidateAll(context.Context) error { return nil }

// Params holds dependencies for the prediction cache, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewPredictionCache connects to Redis when redis.addr is set and falls back to the no-op cache otherwise.
func NewPredictionCache(params Params) service.PredictionCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, prediction cache disabled")

		return NewNoopPredictionCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// An unreachable cache degrades to recomputation, so only warn.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("[Cache] Redis ping failed",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisPredictionCache(client, cfg.PredictionTTL)
}
