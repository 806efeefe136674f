package usecase

import (
	"context"

	"spoolmeter/internal/domain/entity"
)

// NotifyReport summarizes one dispatch.
type NotifyReport struct {
	Recipients int `json:"recipients"`
	Attempted  int `json:"attempted"`
	Delivered  int `json:"delivered"`
	Removed    int `json:"removed"`
	Failed     int `json:"failed"`
}

// NotificationUsecase turns a fired alert into push deliveries.
type NotificationUsecase interface {
	// Notify pushes kind to every opted-in owner of the spool meter. Unknown meters,
	// meters without owners and disabled preferences are no-ops.
	Notify(ctx context.Context, spoolMeterID string, kind entity.AlertKind) (*NotifyReport, error)
}
