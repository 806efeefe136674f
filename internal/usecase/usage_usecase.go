package usecase

import (
	"context"

	"spoolmeter/internal/domain/entity"

	"github.com/google/uuid"
)

// UsageUsecase serves the read side of a spool meter's usage history.
type UsageUsecase interface {
	// GetUsageHistory purges expired entries and returns the remaining ordered history.
	GetUsageHistory(ctx context.Context, accountID uuid.UUID, spoolMeterID string) ([]*entity.UsageLogEntry, error)

	// GetPredictedRunOutDate segments the history and projects when the spool empties.
	// An undeterminable prediction is a result, not an error.
	GetPredictedRunOutDate(ctx context.Context, accountID uuid.UUID, spoolMeterID string) (*entity.Prediction, error)

	// PurgeExpired removes every usage log entry older than the configured retention.
	PurgeExpired(ctx context.Context) (int64, error)
}
