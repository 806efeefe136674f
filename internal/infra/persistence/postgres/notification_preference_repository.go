package postgres

import (
	"context"

	"spoolmeter/internal/domain/entity"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type notificationPreferenceRepository struct {
	db *gorm.DB
}

// NewNotificationPreferenceRepository is the constructor for notificationPreferenceRepository.
func NewNotificationPreferenceRepository(db *gorm.DB) repository.NotificationPreferenceRepository {
	return &notificationPreferenceRepository{
		db: db,
	}
}

// FindNotificationPreference reads the account's alert opt-ins.
func (repo *notificationPreferenceRepository) FindNotificationPreference(ctx context.Context, accountID uuid.UUID) (*entity.NotificationPreference, error) {
	var prefM model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationPreferenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification preference")
	}

	return &entity.NotificationPreference{
		AccountID:      prefM.AccountID,
		BatteryLow:     prefM.BatteryLow,
		BatteryDead:    prefM.BatteryDead,
		MaterialLow:    prefM.MaterialLow,
		MaterialRanOut: prefM.MaterialRanOut,
		UpdatedAt:      prefM.UpdatedAt,
	}, nil
}
