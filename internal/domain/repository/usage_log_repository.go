package repository

import (
	"context"
	"time"

	"spoolmeter/internal/domain/entity"
)

// UsageLogRepository is the append-only time series of remaining fractions.
type UsageLogRepository interface {
	// AppendUsageLog stores a new immutable entry.
	AppendUsageLog(ctx context.Context, entry *entity.UsageLogEntry) error

	// ListUsageLogs returns a spool meter's entries by ascending timestamp, ties in insertion order.
	ListUsageLogs(ctx context.Context, spoolMeterID string) ([]*entity.UsageLogEntry, error)

	// DeleteUsageLogsBefore removes every entry, across all spool meters, older than cutoff.
	DeleteUsageLogsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
