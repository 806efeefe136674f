package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"spoolmeter/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrPublishQueueFull is returned when the forwarding queue has no room left.
var ErrPublishQueueFull = errors.New("publish queue is full")

type queuedEvent struct {
	ctx   context.Context
	event *service.AlertEvent
}

// queuedPublisher puts events on a bounded queue and forwards them to the wrapped
// publisher from a pool of goroutines, so callers never wait on the transport.
type queuedPublisher struct {
	next    service.EventPublisher
	timeout time.Duration
	logger  *slog.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan queuedEvent
	group  errgroup.Group
}

// NewQueuedPublisher wraps next with workers forwarding goroutines.
// timeout bounds one forward; zero leaves it unbounded.
func NewQueuedPublisher(next service.EventPublisher, workers int, timeout time.Duration, logger *slog.Logger) service.EventPublisher {
	workers = max(workers, 1)
	p := &queuedPublisher{
		next:    next,
		timeout: timeout,
		logger:  logger,
		queue:   make(chan queuedEvent, workers*queueDepthPerWorker),
	}

	for range workers {
		p.group.Go(p.work)
	}

	return p
}

// PublishAlertEvent enqueues the event and returns at once. The caller's
// cancellation does not reach the forward, its values do.
func (p *queuedPublisher) PublishAlertEvent(ctx context.Context, event *service.AlertEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	select {
	case p.queue <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
		return nil
	default:
		return ErrPublishQueueFull
	}
}

// Close drains the queue, then closes the wrapped publisher.
func (p *queuedPublisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()

		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	if err := p.group.Wait(); err != nil {
		return err
	}

	return p.next.Close()
}

func (p *queuedPublisher) work() error {
	for item := range p.queue {
		p.forward(item)
	}

	return nil
}

func (p *queuedPublisher) forward(item queuedEvent) {
	ctx := item.ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.next.PublishAlertEvent(ctx, item.event); err != nil {
		p.logger.Error("[QueuedPubSub] Forward failed",
			slog.String("event_id", item.event.EventID),
			slog.String("spool_meter_id", item.event.SpoolMeterID),
			slog.String("alert_kind", item.event.AlertKind.String()),
			slog.Any("error", err),
		)
	}
}
