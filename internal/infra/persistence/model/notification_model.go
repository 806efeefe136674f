package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferenceModel is the GORM-specific struct for the 'notification_preferences' table.
type NotificationPreferenceModel struct {
	AccountID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	BatteryLow     bool      `gorm:"not null;default:true"`
	BatteryDead    bool      `gorm:"not null;default:true"`
	MaterialLow    bool      `gorm:"not null;default:true"`
	MaterialRanOut bool      `gorm:"not null;default:true"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}

// PushDestinationModel is the GORM-specific struct for the 'push_destinations' table.
// Token holds the FCM registration token or the web push endpoint URL.
type PushDestinationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform  string    `gorm:"type:varchar(16);not null"`
	Token     string    `gorm:"type:text;not null;uniqueIndex"`
	P256dhKey string    `gorm:"type:text"`
	AuthKey   string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushDestinationModel) TableName() string {
	return "push_destinations"
}
