package repository

import (
	"context"

	"spoolmeter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationPreferenceNotFound is returned when an account has no preference row.
var ErrNotificationPreferenceNotFound = errors.New("notification preference not found")

// NotificationPreferenceRepository reads per-account alert opt-ins.
type NotificationPreferenceRepository interface {
	FindNotificationPreference(ctx context.Context, accountID uuid.UUID) (*entity.NotificationPreference, error)
}
