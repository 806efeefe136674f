package main

import (
	"context"
	"log/slog"
	"os"

	"spoolmeter/config"
	"spoolmeter/internal/delivery"
	"spoolmeter/internal/delivery/api"
	apimiddleware "spoolmeter/internal/delivery/api/middleware"
	"spoolmeter/internal/delivery/api/router/handler"
	"spoolmeter/internal/delivery/mqtt"
	"spoolmeter/internal/delivery/scheduler"
	"spoolmeter/internal/domain/service"
	"spoolmeter/internal/infra/auth"
	"spoolmeter/internal/infra/cache"
	logs "spoolmeter/internal/infra/log"
	"spoolmeter/internal/infra/metrics"
	"spoolmeter/internal/infra/notification"
	"spoolmeter/internal/infra/persistence/postgres"
	"spoolmeter/internal/infra/pubsub"
	"spoolmeter/internal/usecase/impl"

	"github.com/coder/quartz"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			newClock,
			metrics.NewRegistry,
			fx.Annotate(
				metrics.New,
				fx.As(new(service.TelemetryMetrics)),
			),
			cache.NewPredictionCache,
		),
		pubsub.Module,
	)
}

func newClock() quartz.Clock {
	return quartz.NewReal()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewSpoolMeterRepository,
			postgres.NewUsageLogRepository,
			postgres.NewNotificationPreferenceRepository,
			postgres.NewPushDestinationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewDeviceAuthenticator,
			auth.NewJWTService,
			// Only used when alerts are dispatched in-process.
			notification.NewPushService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTelemetryService,
			impl.NewUsageService,
			impl.NewPushDestinationService,
			impl.NewNotificationService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			handler.NewTelemetryHandler,
			handler.NewSpoolMeterHandler,
			handler.NewPushDestinationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				mqtt.NewSubscriber,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				scheduler.NewSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
