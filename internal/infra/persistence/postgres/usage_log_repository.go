package postgres

import (
	"context"
	"time"

	"spoolmeter/internal/domain/entity"
	"spoolmeter/internal/domain/repository"
	"spoolmeter/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// usageLogRepository implements the repository.UsageLogRepository interface.
type usageLogRepository struct {
	db *gorm.DB
}

// NewUsageLogRepository is the constructor for usageLogRepository.
func NewUsageLogRepository(db *gorm.DB) repository.UsageLogRepository {
	return &usageLogRepository{
		db: db,
	}
}

// AppendUsageLog stores a new entry. The database assigns the sequence.
func (repo *usageLogRepository) AppendUsageLog(ctx context.Context, entry *entity.UsageLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	logM := fromUsageLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSpoolMeterNotFound
		}

		return errors.Wrap(err, "failed to append usage log")
	}

	entry.Sequence = logM.Sequence

	return nil
}

// ListUsageLogs returns entries by ascending timestamp, ties by sequence.
func (repo *usageLogRepository) ListUsageLogs(ctx context.Context, spoolMeterID string) ([]*entity.UsageLogEntry, error) {
	var logModels []*model.UsageLogModel

	if err := repo.db.WithContext(ctx).
		Where("spool_meter_id = ?", spoolMeterID).
		Order("recorded_at ASC").
		Order("sequence ASC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list usage logs")
	}

	entries := make([]*entity.UsageLogEntry, 0, len(logModels))
	for _, logM := range logModels {
		entries = append(entries, toUsageLogDomain(logM))
	}

	return entries, nil
}

// DeleteUsageLogsBefore removes every entry older than cutoff and reports how many went.
func (repo *usageLogRepository) DeleteUsageLogsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("recorded_at < ?", cutoff).
		Delete(&model.UsageLogModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired usage logs")
	}

	return result.RowsAffected, nil
}

func fromUsageLogDomain(data *entity.UsageLogEntry) *model.UsageLogModel {
	return &model.UsageLogModel{
		ID:                data.ID,
		Sequence:          data.Sequence,
		SpoolMeterID:      data.SpoolMeterID,
		RecordedAt:        data.Timestamp,
		RemainingFraction: data.RemainingFraction,
	}
}

func toUsageLogDomain(data *model.UsageLogModel) *entity.UsageLogEntry {
	return &entity.UsageLogEntry{
		ID:                data.ID,
		SpoolMeterID:      data.SpoolMeterID,
		Timestamp:         data.RecordedAt,
		RemainingFraction: data.RemainingFraction,
		Sequence:          data.Sequence,
	}
}
