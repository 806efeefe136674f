package context

import (
	"context"
	"log/slog"
)

// KeySpoolMeterID is the key for the spool meter a telemetry report comes from.
const KeySpoolMeterID ContextKey = "spool_meter_id"

// WithSpoolMeter records the reporting spool meter on ctx and tags the
// request-scoped logger (or fallback) with spool_meter_id.
// A ctx already scoped to the same meter is returned unchanged.
func WithSpoolMeter(ctx context.Context, spoolMeterID string, fallback *slog.Logger) context.Context {
	if spoolMeterID == "" || GetSpoolMeterID(ctx) == spoolMeterID {
		return ctx
	}

	logger := GetLoggerOrDefault(ctx, fallback).With(slog.String("spool_meter_id", spoolMeterID))

	return WithLogger(context.WithValue(ctx, KeySpoolMeterID, spoolMeterID), logger)
}

// GetSpoolMeterID returns "" outside a telemetry report.
func GetSpoolMeterID(ctx context.Context) string {
	id, _ := ctx.Value(KeySpoolMeterID).(string)

	return id
}
