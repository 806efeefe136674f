package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "spoolmeter/internal/delivery/context"
	"spoolmeter/internal/domain/service"
	"spoolmeter/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const queueDepthPerWorker = 16

// ErrPublisherClosed is returned when publishing after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// inProcessPublisher dispatches alerts on a fixed pool of goroutines inside the API process.
type inProcessPublisher struct {
	notifier usecase.NotificationUsecase
	timeout  time.Duration
	logger   *slog.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan *service.AlertEvent
	group  errgroup.Group
}

// NewInProcessPublisher starts workers goroutines that run notifier for every queued alert.
// timeout bounds one whole dispatch; zero leaves it unbounded.
func NewInProcessPublisher(notifier usecase.NotificationUsecase, workers int, timeout time.Duration, logger *slog.Logger) service.EventPublisher {
	workers = max(workers, 1)
	p := &inProcessPublisher{
		notifier: notifier,
		timeout:  timeout,
		logger:   logger,
		queue:    make(chan *service.AlertEvent, workers*queueDepthPerWorker),
	}

	for range workers {
		p.group.Go(p.work)
	}

	return p
}

// PublishAlertEvent enqueues the alert. It blocks only while the queue is full.
func (p *inProcessPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.queue <- event:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "enqueue alert event")
	}
}

// Close stops accepting events and waits for queued ones to finish.
func (p *inProcessPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	return p.group.Wait()
}

func (p *inProcessPublisher) work() error {
	for event := range p.queue {
		p.dispatch(event)
	}

	return nil
}

func (p *inProcessPublisher) dispatch(event *service.AlertEvent) {
	ctx := context.Background()
	if event.RequestID != "" {
		ctx = deliverycontext.WithRequestID(ctx, event.RequestID)
	}
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	report, err := p.notifier.Notify(ctx, event.SpoolMeterID, event.AlertKind)
	if err != nil {
		p.logger.Error("[InProcessPubSub] Dispatch failed",
			slog.String("event_id", event.EventID),
			slog.String("spool_meter_id", event.SpoolMeterID),
			slog.String("alert_kind", event.AlertKind.String()),
			slog.Any("error", err),
		)

		return
	}

	p.logger.Debug("[InProcessPubSub] Dispatch finished",
		slog.String("event_id", event.EventID),
		slog.Int("delivered", report.Delivered),
		slog.Int("removed", report.Removed),
		slog.Int("failed", report.Failed),
	)
}
