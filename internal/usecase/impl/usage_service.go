package impl

import (
	"context"
	"log/slog"
	"time"

	"spoolmeter/config"
	deliverycontext "spoolmeter/internal/delivery/context"
	"spoolmeter/internal/domain/entity"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/domain/service"
	"spoolmeter/internal/domain/usage"
	"spoolmeter/internal/errors"
	"spoolmeter/internal/usecase"

	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// usageService implements the UsageUsecase interface.
type usageService struct {
	spoolMeterRepo repository.SpoolMeterRepository
	usageLogRepo   repository.UsageLogRepository
	cache          service.PredictionCache
	metrics        service.TelemetryMetrics
	clock          quartz.Clock
	margin         float64
	retention      time.Duration
	logger         *slog.Logger
}

// NewUsageService is the constructor for usageService.
func NewUsageService(
	spoolMeterRepo repository.SpoolMeterRepository,
	usageLogRepo repository.UsageLogRepository,
	cache service.PredictionCache,
	metrics service.TelemetryMetrics,
	clock quartz.Clock,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UsageUsecase {
	return &usageService{
		spoolMeterRepo: spoolMeterRepo,
		usageLogRepo:   usageLogRepo,
		cache:          cache,
		metrics:        metrics,
		clock:          clock,
		margin:         cfg.Telemetry.SessionMargin,
		retention:      cfg.Telemetry.Retention,
		logger:         logger,
	}
}

func (srv *usageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetUsageHistory returns the ordered history after dropping expired entries.
func (srv *usageService) GetUsageHistory(ctx context.Context, accountID uuid.UUID, spoolMeterID string) ([]*entity.UsageLogEntry, error) {
	if err := srv.authorize(ctx, accountID, spoolMeterID); err != nil {
		return nil, err
	}

	if _, err := srv.PurgeExpired(ctx); err != nil {
		srv.log(ctx).Warn("[Usage] Purge before listing failed", slog.Any("error", err))
	}

	entries, err := srv.usageLogRepo.ListUsageLogs(ctx, spoolMeterID)
	if err != nil {
		return nil, toStorageError(errors.Wrap(err, "failed to list usage logs"))
	}

	return entries, nil
}

// GetPredictedRunOutDate returns the cached prediction or recomputes it from the full history.
func (srv *usageService) GetPredictedRunOutDate(ctx context.Context, accountID uuid.UUID, spoolMeterID string) (*entity.Prediction, error) {
	if err := srv.authorize(ctx, accountID, spoolMeterID); err != nil {
		return nil, err
	}

	// The version is read before the history so an ingest that lands in between
	// supersedes whatever this query stores.
	cached, version, cacheErr := srv.cache.Get(ctx, spoolMeterID)
	switch {
	case cacheErr != nil:
		srv.log(ctx).Warn("[Usage] Prediction cache read failed",
			slog.String("spool_meter_id", spoolMeterID), slog.Any("error", cacheErr))
	case cached != nil:
		return cached, nil
	}

	start := srv.clock.Now()

	entries, err := srv.usageLogRepo.ListUsageLogs(ctx, spoolMeterID)
	if err != nil {
		return nil, toStorageError(errors.Wrap(err, "failed to list usage logs"))
	}

	usage.SortEntries(entries)
	prediction := usage.Predict(usage.Segment(entries, srv.margin))
	prediction.SpoolMeterID = spoolMeterID

	srv.metrics.PredictionObserved(srv.clock.Now().Sub(start))
	srv.log(ctx).Debug("[Usage] Prediction computed",
		slog.String("spool_meter_id", spoolMeterID),
		slog.Bool("determinable", prediction.Determinable),
		slog.Int("sessions", prediction.SessionCount),
		slog.Int("points", prediction.PointCount))

	if cacheErr == nil {
		if err := srv.cache.Set(ctx, version, &prediction); err != nil {
			srv.log(ctx).Warn("[Usage] Prediction cache write failed",
				slog.String("spool_meter_id", spoolMeterID), slog.Any("error", err))
		}
	}

	return &prediction, nil
}

// PurgeExpired deletes entries whose age exceeds the retention window.
func (srv *usageService) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := srv.clock.Now().Add(-srv.retention)

	removed, err := srv.usageLogRepo.DeleteUsageLogsBefore(ctx, cutoff)
	if err != nil {
		return 0, toStorageError(errors.Wrap(err, "failed to delete expired usage logs"))
	}

	if removed > 0 {
		srv.metrics.UsageLogsPurged(removed)
		if err := srv.cache.InvalidateAll(ctx); err != nil {
			srv.log(ctx).Warn("[Usage] Failed to invalidate prediction cache after purge", slog.Any("error", err))
		}
	}

	srv.log(ctx).Debug("[Usage] Expired usage logs purged",
		slog.Int64("removed", removed), slog.Time("cutoff", cutoff))

	return removed, nil
}

func (srv *usageService) authorize(ctx context.Context, accountID uuid.UUID, spoolMeterID string) error {
	if _, err := srv.spoolMeterRepo.FindSpoolMeterByID(ctx, spoolMeterID); err != nil {
		if errors.Is(err, repository.ErrSpoolMeterNotFound) {
			return domainerrors.ErrSpoolMeterNotFound
		}

		return toStorageError(errors.Wrap(err, "failed to find spool meter"))
	}

	owned, err := srv.spoolMeterRepo.IsOwnedBy(ctx, spoolMeterID, accountID)
	if err != nil {
		return toStorageError(errors.Wrap(err, "failed to check ownership"))
	}
	if !owned {
		return domainerrors.ErrForbidden
	}

	return nil
}
