package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"spoolmeter/config"
	deliverycontext "spoolmeter/internal/delivery/context"
	"spoolmeter/internal/domain/entity"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/domain/service"
	"spoolmeter/internal/errors"
	"spoolmeter/internal/usecase"

	"golang.org/x/sync/errgroup"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	spoolMeterRepo  repository.SpoolMeterRepository
	preferenceRepo  repository.NotificationPreferenceRepository
	destinationRepo repository.PushDestinationRepository
	pushService     service.PushService
	metrics         service.TelemetryMetrics
	concurrency     int
	timeout         time.Duration
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	spoolMeterRepo repository.SpoolMeterRepository,
	preferenceRepo repository.NotificationPreferenceRepository,
	destinationRepo repository.PushDestinationRepository,
	pushService service.PushService,
	metrics service.TelemetryMetrics,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		spoolMeterRepo:  spoolMeterRepo,
		preferenceRepo:  preferenceRepo,
		destinationRepo: destinationRepo,
		pushService:     pushService,
		metrics:         metrics,
		concurrency:     cfg.Telemetry.DispatchConcurrency,
		timeout:         cfg.Telemetry.NotifyTimeout,
		logger:          logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Notify resolves every recipient destination first, so a storage failure surfaces
// before any push is sent and a redelivered event does not double-notify.
func (srv *notificationService) Notify(ctx context.Context, spoolMeterID string, kind entity.AlertKind) (*usecase.NotifyReport, error) {
	report := &usecase.NotifyReport{}

	if !kind.IsValid() {
		return report, domainerrors.ErrInvalidInput.WithDetails("unknown alert kind: " + kind.String())
	}

	meter, err := srv.spoolMeterRepo.FindSpoolMeterByID(ctx, spoolMeterID)
	if err != nil {
		if errors.Is(err, repository.ErrSpoolMeterNotFound) {
			srv.log(ctx).Debug("[Dispatcher] Unknown spool meter, skipping", slog.String("spool_meter_id", spoolMeterID))

			return report, nil
		}

		return report, toStorageError(errors.Wrap(err, "failed to find spool meter"))
	}

	owners, err := srv.spoolMeterRepo.FindOwnerAccountIDs(ctx, spoolMeterID)
	if err != nil {
		return report, toStorageError(errors.Wrap(err, "failed to find owners"))
	}

	var destinations []*entity.PushDestination
	for _, accountID := range owners {
		pref, err := srv.preferenceRepo.FindNotificationPreference(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrNotificationPreferenceNotFound) {
				continue
			}

			return report, toStorageError(errors.Wrap(err, "failed to find notification preference"))
		}
		if !pref.Allows(kind) {
			continue
		}

		accountDestinations, err := srv.destinationRepo.FindPushDestinationsByAccount(ctx, accountID)
		if err != nil {
			return report, toStorageError(errors.Wrap(err, "failed to find push destinations"))
		}

		report.Recipients++
		destinations = append(destinations, accountDestinations...)
	}

	if len(destinations) == 0 {
		srv.log(ctx).Debug("[Dispatcher] Nothing to deliver",
			slog.String("spool_meter_id", spoolMeterID),
			slog.String("alert_kind", kind.String()),
			slog.Int("owners", len(owners)))

		return report, nil
	}

	title, body := kind.Compose(meter.Name)
	data := map[string]string{
		"spool_meter_id": spoolMeterID,
		"alert_kind":     kind.String(),
	}

	srv.fanOut(ctx, destinations, title, body, data, report)

	srv.log(ctx).Info("[Dispatcher] Alert dispatched",
		slog.String("spool_meter_id", spoolMeterID),
		slog.String("alert_kind", kind.String()),
		slog.Int("attempted", report.Attempted),
		slog.Int("delivered", report.Delivered),
		slog.Int("removed", report.Removed),
		slog.Int("failed", report.Failed))

	return report, nil
}

// fanOut delivers to every destination concurrently. One failure never stops the others.
func (srv *notificationService) fanOut(
	ctx context.Context,
	destinations []*entity.PushDestination,
	title, body string,
	data map[string]string,
	report *usecase.NotifyReport,
) {
	var (
		group errgroup.Group
		mu    sync.Mutex
	)
	group.SetLimit(max(srv.concurrency, 1))

	for _, destination := range destinations {
		group.Go(func() error {
			outcome, removed := srv.deliver(ctx, destination, title, body, data)

			mu.Lock()
			defer mu.Unlock()

			report.Attempted++
			switch outcome {
			case entity.DeliveryDelivered:
				report.Delivered++
			case entity.DeliveryPermanentlyInvalid:
				if removed {
					report.Removed++
				}
			case entity.DeliveryTransientFailure:
				report.Failed++
			}

			return nil
		})
	}

	_ = group.Wait()
}

func (srv *notificationService) deliver(
	ctx context.Context,
	destination *entity.PushDestination,
	title, body string,
	data map[string]string,
) (entity.DeliveryOutcome, bool) {
	deliverCtx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	outcome, err := srv.pushService.Deliver(deliverCtx, destination, title, body, data)
	srv.metrics.DeliveryObserved(string(destination.Platform), outcome.String())

	logger := srv.log(ctx).With(
		slog.String("destination_id", destination.ID.String()),
		slog.String("platform", string(destination.Platform)))

	switch outcome {
	case entity.DeliveryDelivered:
		return outcome, false
	case entity.DeliveryPermanentlyInvalid:
		if delErr := srv.destinationRepo.DeletePushDestinationByToken(ctx, destination.Token); delErr != nil {
			logger.Error("[Dispatcher] Failed to remove invalid destination", slog.Any("error", delErr))

			return outcome, false
		}
		logger.Info("[Dispatcher] Removed permanently invalid destination", slog.Any("reason", err))

		return outcome, true
	default:
		logger.Warn("[Dispatcher] Transient delivery failure", slog.Any("error", err))

		return entity.DeliveryTransientFailure, false
	}
}
