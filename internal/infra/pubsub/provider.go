// Package pubsub carries alert events from the ingestion gateway to the notification dispatcher.
package pubsub

import (
	"context"
	"log/slog"
	"time"

	"spoolmeter/config"
	"spoolmeter/internal/domain/constants"
	"spoolmeter/internal/domain/service"
	"spoolmeter/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// dispatchBudget bounds one in-process dispatch relative to the per-delivery timeout.
	dispatchBudget = 4
	// forwardTimeout bounds one forward from the queue to the local worker or the topic.
	forwardTimeout = 30 * time.Second
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishAlertEvent(_ context.Context, event *service.AlertEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_id", event.EventID),
		slog.String("alert_kind", event.AlertKind.String()),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc       fx.Lifecycle
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Notifier usecase.NotificationUsecase `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewQueuedPublisher(NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), cfg.InProcessWorkers, forwardTimeout, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		topicPublisher, err := NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}
		publisher = NewQueuedPublisher(topicPublisher, cfg.InProcessWorkers, forwardTimeout, logger)

	case constants.PubSubProviderInProcess:
		if params.Notifier == nil {
			return nil, errors.New("notification usecase is required for inprocess provider")
		}

		var timeout time.Duration
		if params.Config.Telemetry != nil {
			timeout = params.Config.Telemetry.NotifyTimeout * dispatchBudget
		}
		logger.Info("Using in-process publisher for alerts",
			slog.Int("workers", cfg.InProcessWorkers),
		)

		publisher = NewInProcessPublisher(params.Notifier, cfg.InProcessWorkers, timeout, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
