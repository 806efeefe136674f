// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"spoolmeter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSpoolMeterNotFound is returned when no spool meter has the requested ID.
var ErrSpoolMeterNotFound = errors.New("spool meter not found")

// SpoolMeterRepository defines device-state operations.
type SpoolMeterRepository interface {
	// FindSpoolMeterByID retrieves the current state of a spool meter.
	FindSpoolMeterByID(ctx context.Context, id string) (*entity.SpoolMeter, error)

	// UpdateRemainingAmount overwrites the remaining amount (last writer wins).
	UpdateRemainingAmount(ctx context.Context, id string, amount float64, at time.Time) error

	// UpdateBatteryStatus overwrites the battery status (last writer wins).
	UpdateBatteryStatus(ctx context.Context, id string, status entity.BatteryStatus, at time.Time) error

	// FindOwnerAccountIDs lists every account that owns the spool meter.
	FindOwnerAccountIDs(ctx context.Context, id string) ([]uuid.UUID, error)

	// IsOwnedBy reports whether accountID is one of the owners.
	IsOwnedBy(ctx context.Context, id string, accountID uuid.UUID) (bool, error)
}
