// Package usecase defines the application's use case interfaces.
package usecase

import "context"

// Ingest kinds used for logs and metrics.
const (
	IngestKindRemainingAmount = "remaining_amount"
	IngestKindBatteryStatus   = "battery_status"
)

// IngestResult is the definite outcome returned to a reporting device.
type IngestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// TelemetryUsecase accepts device-originated updates.
type TelemetryUsecase interface {
	// ReportRemainingAmount verifies the credential, stores the new amount, appends a
	// usage log entry and raises a material alert when a threshold is hit.
	ReportRemainingAmount(ctx context.Context, spoolMeterID, secret, rawAmount string) (*IngestResult, error)

	// ReportBatteryStatus verifies the credential, stores the new status and raises a
	// battery alert when a threshold is hit.
	ReportBatteryStatus(ctx context.Context, spoolMeterID, secret, rawStatus string) (*IngestResult, error)
}
