// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

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

const ingestSuccessMessage = "Successfully updated spool meter."

// telemetryService implements the TelemetryUsecase interface.
type telemetryService struct {
	txManager     repository.TransactionManager
	authenticator service.DeviceAuthenticator
	publisher     service.EventPublisher
	cache         service.PredictionCache
	metrics       service.TelemetryMetrics
	clock         quartz.Clock
	logger        *slog.Logger
}

// NewTelemetryService is the constructor for telemetryService.
func NewTelemetryService(
	txManager repository.TransactionManager,
	authenticator service.DeviceAuthenticator,
	publisher service.EventPublisher,
	cache service.PredictionCache,
	metrics service.TelemetryMetrics,
	clock quartz.Clock,
	logger *slog.Logger,
) usecase.TelemetryUsecase {
	return &telemetryService{
		txManager:     txManager,
		authenticator: authenticator,
		publisher:     publisher,
		cache:         cache,
		metrics:       metrics,
		clock:         clock,
		logger:        logger,
	}
}

func (srv *telemetryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReportRemainingAmount records a new remaining amount.
func (srv *telemetryService) ReportRemainingAmount(ctx context.Context, spoolMeterID, secret, rawAmount string) (*usecase.IngestResult, error) {
	result, err := srv.reportRemainingAmount(ctx, spoolMeterID, secret, rawAmount)
	srv.observe(ctx, usecase.IngestKindRemainingAmount, err)

	return result, err
}

// ReportBatteryStatus records a new battery status.
func (srv *telemetryService) ReportBatteryStatus(ctx context.Context, spoolMeterID, secret, rawStatus string) (*usecase.IngestResult, error) {
	result, err := srv.reportBatteryStatus(ctx, spoolMeterID, secret, rawStatus)
	srv.observe(ctx, usecase.IngestKindBatteryStatus, err)

	return result, err
}

func (srv *telemetryService) reportRemainingAmount(ctx context.Context, spoolMeterID, secret, rawAmount string) (*usecase.IngestResult, error) {
	if err := requireCredential(spoolMeterID, secret); err != nil {
		return nil, err
	}
	rawAmount = strings.TrimSpace(rawAmount)
	if rawAmount == "" {
		return nil, domainerrors.ErrMissingAmount
	}

	meter, err := srv.authenticator.ResolveCredential(ctx, spoolMeterID, secret)
	if err != nil {
		return nil, err //nolint:wrapcheck // already a domain error
	}

	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, domainerrors.ErrAmountNotNumber.WithDetails(rawAmount)
	}
	if amount < 0 {
		return nil, domainerrors.ErrAmountNegative
	}

	amount = entity.ClampRemaining(amount, meter.OriginalAmount)
	fraction := entity.RemainingFraction(amount, meter.OriginalAmount)
	now := srv.clock.Now()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SpoolMeterRepo().UpdateRemainingAmount(ctx, meter.ID, amount, now); err != nil {
			return errors.Wrap(err, "failed to update remaining amount")
		}

		entry := &entity.UsageLogEntry{
			ID:                uuid.New(),
			SpoolMeterID:      meter.ID,
			Timestamp:         now,
			RemainingFraction: fraction,
		}
		if err := repoFactory.UsageLogRepo().AppendUsageLog(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to append usage log")
		}

		return nil
	})
	if err != nil {
		return nil, toStorageError(err)
	}

	if err := srv.cache.Invalidate(ctx, meter.ID); err != nil {
		srv.log(ctx).Warn("[Ingest] Failed to invalidate prediction cache", slog.Any("error", err))
	}

	srv.log(ctx).Debug("[Ingest] Remaining amount updated",
		slog.Float64("amount", amount),
		slog.Float64("fraction", fraction))

	if kind, fired := usage.EvaluateMaterial(fraction); fired {
		srv.raiseAlert(ctx, meter.ID, kind, now)
	}

	return &usecase.IngestResult{Success: true, Message: ingestSuccessMessage}, nil
}

func (srv *telemetryService) reportBatteryStatus(ctx context.Context, spoolMeterID, secret, rawStatus string) (*usecase.IngestResult, error) {
	if err := requireCredential(spoolMeterID, secret); err != nil {
		return nil, err
	}
	if strings.TrimSpace(rawStatus) == "" {
		return nil, domainerrors.ErrMissingBatteryLevel
	}

	meter, err := srv.authenticator.ResolveCredential(ctx, spoolMeterID, secret)
	if err != nil {
		return nil, err //nolint:wrapcheck // already a domain error
	}

	status, ok := entity.ParseBatteryStatus(rawStatus)
	if !ok {
		return nil, domainerrors.ErrBatteryStatusInvalid.WithDetails(rawStatus)
	}

	now := srv.clock.Now()
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(
			repoFactory.SpoolMeterRepo().UpdateBatteryStatus(ctx, meter.ID, status, now),
			"failed to update battery status",
		)
	})
	if err != nil {
		return nil, toStorageError(err)
	}

	srv.log(ctx).Debug("[Ingest] Battery status updated",
		slog.String("battery_status", status.String()))

	if kind, fired := usage.EvaluateBattery(status); fired {
		srv.raiseAlert(ctx, meter.ID, kind, now)
	}

	return &usecase.IngestResult{Success: true, Message: ingestSuccessMessage}, nil
}

// raiseAlert hands the alert to the publisher. Delivery happens elsewhere, so a
// publish failure never changes the ingestion result.
func (srv *telemetryService) raiseAlert(ctx context.Context, spoolMeterID string, kind entity.AlertKind, at time.Time) {
	srv.metrics.AlertFired(kind.String())

	event := &service.AlertEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		SpoolMeterID: spoolMeterID,
		AlertKind:    kind,
		OccurredAt:   at,
	}

	if err := srv.publisher.PublishAlertEvent(ctx, event); err != nil {
		srv.log(ctx).Error("[Ingest] Failed to publish alert event",
			slog.String("alert_kind", kind.String()),
			slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("[Ingest] Alert raised",
		slog.String("alert_kind", kind.String()),
		slog.String("event_id", event.EventID))
}

// observe logs through the request logger, which the deliveries scope to the spool meter.
func (srv *telemetryService) observe(ctx context.Context, kind string, err error) {
	result := ingestOutcome(err)
	srv.metrics.IngestObserved(kind, result)

	if err != nil {
		srv.log(ctx).Info("[Ingest] Update rejected",
			slog.String("kind", kind),
			slog.String("result", result),
			slog.Any("error", err))
	}
}

func requireCredential(spoolMeterID, secret string) error {
	if strings.TrimSpace(spoolMeterID) == "" {
		return domainerrors.ErrMissingSpoolMeterID
	}
	if secret == "" {
		return domainerrors.ErrMissingPassword
	}

	return nil
}

// ingestOutcome maps an ingestion error to a metric label.
func ingestOutcome(err error) string {
	if err == nil {
		return "accepted"
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return strings.ToLower(appErr.ErrorCode())
	}

	return "error"
}

// toStorageError keeps domain errors and marks everything else as a storage failure.
func toStorageError(err error) error {
	if _, ok := errors.AsType[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, err.Error())
}
