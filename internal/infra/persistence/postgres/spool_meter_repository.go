package postgres

import (
	"context"
	"time"

	"spoolmeter/internal/domain/entity"
	domainerrors "spoolmeter/internal/domain/errors"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// spoolMeterRepository implements the repository.SpoolMeterRepository interface.
type spoolMeterRepository struct {
	db *gorm.DB
}

// NewSpoolMeterRepository is the constructor for spoolMeterRepository.
func NewSpoolMeterRepository(db *gorm.DB) repository.SpoolMeterRepository {
	return &spoolMeterRepository{
		db: db,
	}
}

// FindSpoolMeterByID retrieves the current state of a spool meter.
func (repo *spoolMeterRepository) FindSpoolMeterByID(ctx context.Context, id string) (*entity.SpoolMeter, error) {
	var meterM model.SpoolMeterModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&meterM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpoolMeterNotFound
		}

		return nil, errors.Wrap(err, "failed to find spool meter by ID")
	}

	return toSpoolMeterDomain(&meterM), nil
}

// UpdateRemainingAmount overwrites the remaining amount.
func (repo *spoolMeterRepository) UpdateRemainingAmount(ctx context.Context, id string, amount float64, at time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"remaining_amount": amount,
		"updated_at":       at,
	}, "failed to update remaining amount")
}

// UpdateBatteryStatus overwrites the battery status.
func (repo *spoolMeterRepository) UpdateBatteryStatus(ctx context.Context, id string, status entity.BatteryStatus, at time.Time) error {
	return repo.update(ctx, id, map[string]any{
		"battery_status": int16(status),
		"updated_at":     at,
	}, "failed to update battery status")
}

func (repo *spoolMeterRepository) update(ctx context.Context, id string, columns map[string]any, failure string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SpoolMeterModel{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidInput.WrapMessage("spool meter state violates a constraint")
		}

		return errors.Wrap(result.Error, failure)
	}

	if result.RowsAffected == 0 {
		return repository.ErrSpoolMeterNotFound
	}

	return nil
}

// FindOwnerAccountIDs lists every account that owns the spool meter, oldest pairing first.
func (repo *spoolMeterRepository) FindOwnerAccountIDs(ctx context.Context, id string) ([]uuid.UUID, error) {
	var accountIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.SpoolMeterOwnerModel{}).
		Where("spool_meter_id = ?", id).
		Order("created_at ASC").
		Pluck("account_id", &accountIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find spool meter owners")
	}

	return accountIDs, nil
}

// IsOwnedBy reports whether accountID owns the spool meter.
func (repo *spoolMeterRepository) IsOwnedBy(ctx context.Context, id string, accountID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.SpoolMeterOwnerModel{}).
		Where("spool_meter_id = ? AND account_id = ?", id, accountID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check spool meter ownership")
	}

	return count > 0, nil
}

func toSpoolMeterDomain(data *model.SpoolMeterModel) *entity.SpoolMeter {
	if data == nil {
		return nil
	}

	return &entity.SpoolMeter{
		ID:              data.ID,
		Name:            data.Name,
		SecretHash:      data.SecretHash,
		RemainingAmount: data.RemainingAmount,
		OriginalAmount:  data.OriginalAmount,
		BatteryStatus:   entity.BatteryStatus(data.BatteryStatus),
		MaterialTypeID:  data.MaterialTypeID,
		Color:           data.Color,
		UpdatedAt:       data.UpdatedAt,
	}
}
