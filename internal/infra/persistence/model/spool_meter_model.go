// Package model holds the GORM table mappings of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SpoolMeterModel is the GORM-specific struct for the 'spool_meters' table.
type SpoolMeterModel struct {
	ID              string    `gorm:"type:varchar(64);primaryKey"`
	Name            string    `gorm:"type:text;not null;default:''"`
	SecretHash      string    `gorm:"type:text;not null"`
	RemainingAmount float64   `gorm:"type:double precision;not null;default:0"`
	OriginalAmount  float64   `gorm:"type:double precision;not null;default:0"`
	BatteryStatus   int16     `gorm:"type:smallint;not null;default:0"`
	MaterialTypeID  uuid.UUID `gorm:"type:uuid"`
	Color           string    `gorm:"type:varchar(7);not null;default:'#000000'"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SpoolMeterModel) TableName() string {
	return "spool_meters"
}

// SpoolMeterOwnerModel links an account to a spool meter it owns.
type SpoolMeterOwnerModel struct {
	SpoolMeterID string    `gorm:"type:varchar(64);primaryKey"`
	AccountID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SpoolMeterOwnerModel) TableName() string {
	return "spool_meter_owners"
}
