package model

import (
	"time"

	"github.com/google/uuid"
)

// UsageLogModel is the GORM-specific struct for the append-only 'usage_logs' table.
// Sequence is assigned by the database and orders entries sharing a timestamp.
type UsageLogModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Sequence          int64     `gorm:"type:bigserial;autoIncrement;uniqueIndex;not null"`
	SpoolMeterID      string    `gorm:"type:varchar(64);not null;index:idx_usage_logs_meter_time,priority:1"`
	RecordedAt        time.Time `gorm:"not null;index:idx_usage_logs_meter_time,priority:2;index"`
	RemainingFraction float64   `gorm:"type:double precision;not null"`
}

// TableName explicitly sets the table name for GORM.
func (UsageLogModel) TableName() string {
	return "usage_logs"
}
