package service

import (
	"context"
	"time"

	"spoolmeter/internal/domain/entity"
)

// AlertEvent is a fired threshold alert handed to the notification pipeline.
type AlertEvent struct {
	RequestID    string           `json:"request_id,omitempty"` // For distributed tracing
	EventID      string           `json:"event_id"`
	SpoolMeterID string           `json:"spool_meter_id"`
	AlertKind    entity.AlertKind `json:"alert_kind"`
	OccurredAt   time.Time        `json:"occurred_at"`
}

// EventPublisher hands alert events to asynchronous processing.
// Publishing never waits for push delivery.
type EventPublisher interface {
	// PublishAlertEvent enqueues an alert for dispatch.
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
