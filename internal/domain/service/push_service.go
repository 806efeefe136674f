package service

import (
	"context"

	"spoolmeter/internal/domain/entity"
)

// PushService delivers one message to one destination.
// The returned error describes a non-delivered outcome for logging; the outcome
// decides what the caller does with the destination.
type PushService interface {
	Deliver(ctx context.Context, destination *entity.PushDestination, title, body string, data map[string]string) (entity.DeliveryOutcome, error)
}
