// Package scheduler runs the periodic usage log retention sweep.
package scheduler

import (
	"context"
	"log/slog"
	"sync"

	"spoolmeter/config"
	"spoolmeter/internal/delivery"
	"spoolmeter/internal/domain/lifecycle"
	"spoolmeter/internal/domain/service"
	"spoolmeter/internal/errors"
	"spoolmeter/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the sweeper, injected by Fx.
type SweeperParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	UsageUC usecase.UsageUsecase
	Metrics service.TelemetryMetrics
}

type sweeper struct {
	cron     *cron.Cron
	schedule string
	usageUC  usecase.UsageUsecase
	metrics  service.TelemetryMetrics
	logger   *slog.Logger

	// ctx is cancelled on stop so an in-flight sweep gives up.
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// NewSweeper schedules PurgeExpired on telemetry.sweepSchedule.
func NewSweeper(params SweeperParams) (delivery.Delivery, error) {
	spec := params.Config.Telemetry.SweepSchedule
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, errors.Wrapf(err, "parse sweep schedule %q", spec)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &sweeper{
		cron: cron.New(
			cron.WithLogger(cronLogger{logger: params.Logger}),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: params.Logger})),
		),
		schedule: spec,
		usageUC:  params.UsageUC,
		metrics:  params.Metrics,
		logger:   params.Logger,
		ctx:      ctx,
		cancel:   cancel,
	}
	s.cron.Schedule(schedule, cron.FuncJob(func() { s.sweep(s.ctx) }))

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve runs the cron scheduler until stop. Stopping again here covers a stop
// that raced ahead of Start.
func (s *sweeper) Serve(context.Context) error {
	s.logger.Info("[Sweep] Scheduler started", slog.String("schedule", s.schedule))
	s.cron.Start()
	<-s.ctx.Done()
	<-s.cron.Stop().Done()

	return nil
}

// sweep never fails the process; errors are logged and counted.
func (s *sweeper) sweep(ctx context.Context) {
	removed, err := s.usageUC.PurgeExpired(ctx)
	if err != nil {
		s.metrics.SweepFailed()
		s.logger.Error("[Sweep] Failed to purge expired usage logs", slog.Any("error", err))

		return
	}

	s.logger.Info("[Sweep] Purged expired usage logs", slog.Int64("removed", removed))
}

func (s *sweeper) stop(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.logger.Info("[Sweep] Stopping scheduler")
		s.cancel()

		waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer cancel()

		select {
		case <-s.cron.Stop().Done():
		case <-waitCtx.Done():
			err = errors.Wrap(waitCtx.Err(), "wait for running sweep")
		}
	})

	return err
}

// cronLogger routes cron's internal logging through slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("[Sweep] "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("[Sweep] "+msg, append(keysAndValues, slog.Any("error", err))...)
}
