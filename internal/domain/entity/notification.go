package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AlertKind identifies a threshold condition that can be pushed to owners.
type AlertKind string

const (
	// AlertMaterialLow fires when roughly 10% of the spool is left.
	AlertMaterialLow AlertKind = "material_low"
	// AlertMaterialRanOut fires when the spool is empty.
	AlertMaterialRanOut AlertKind = "material_ran_out"
	// AlertBatteryLow fires when the battery reports Low.
	AlertBatteryLow AlertKind = "battery_low"
	// AlertBatteryDead fires when the battery reports Dead.
	AlertBatteryDead AlertKind = "battery_dead"
)

type alertSpec struct {
	enabled func(p *NotificationPreference) bool
	title   string
	body    string // %s is the spool meter display name
}

//nolint:gochecknoglobals
var alertSpecs = map[AlertKind]alertSpec{
	AlertMaterialLow: {
		enabled: func(p *NotificationPreference) bool { return p.MaterialLow },
		title:   "Low Material Warning",
		body:    "About 10%% of the material is left on the spool connected to %s.",
	},
	AlertMaterialRanOut: {
		enabled: func(p *NotificationPreference) bool { return p.MaterialRanOut },
		title:   "Spool Empty!",
		body:    "The spool connected to %s is empty!",
	},
	AlertBatteryLow: {
		enabled: func(p *NotificationPreference) bool { return p.BatteryLow },
		title:   "Low Battery Warning",
		body:    "The battery of %s is running low.",
	},
	AlertBatteryDead: {
		enabled: func(p *NotificationPreference) bool { return p.BatteryDead },
		title:   "Dead Battery!",
		body:    "The battery of %s is empty!",
	},
}

// String returns the string representation of the AlertKind.
func (k AlertKind) String() string {
	return string(k)
}

// IsValid checks if the AlertKind is a known value.
func (k AlertKind) IsValid() bool {
	_, ok := alertSpecs[k]

	return ok
}

// Compose renders the fixed title and body for this kind.
func (k AlertKind) Compose(spoolMeterName string) (title, body string) {
	spec, ok := alertSpecs[k]
	if !ok {
		return "", ""
	}

	return spec.title, fmt.Sprintf(spec.body, spoolMeterName)
}

// NotificationPreference holds an account's per-kind opt-ins.
type NotificationPreference struct {
	AccountID      uuid.UUID `json:"account_id"`
	BatteryLow     bool      `json:"battery_low"`
	BatteryDead    bool      `json:"battery_dead"`
	MaterialLow    bool      `json:"material_low"`
	MaterialRanOut bool      `json:"material_ran_out"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DefaultNotificationPreference is what an account gets at creation: every kind enabled.
func DefaultNotificationPreference(accountID uuid.UUID) *NotificationPreference {
	return &NotificationPreference{
		AccountID:      accountID,
		BatteryLow:     true,
		BatteryDead:    true,
		MaterialLow:    true,
		MaterialRanOut: true,
	}
}

// Allows reports whether the account opted in to kind.
func (p *NotificationPreference) Allows(kind AlertKind) bool {
	if p == nil {
		return false
	}

	spec, ok := alertSpecs[kind]
	if !ok {
		return false
	}

	return spec.enabled(p)
}

// PushPlatform selects the transport that understands a destination.
type PushPlatform string

const (
	// PushPlatformFCM is a Firebase Cloud Messaging registration token.
	PushPlatformFCM PushPlatform = "fcm"
	// PushPlatformWebPush is a browser Push API subscription.
	PushPlatformWebPush PushPlatform = "webpush"
)

// IsValid checks if the PushPlatform is supported.
func (p PushPlatform) IsValid() bool {
	switch p {
	case PushPlatformFCM, PushPlatformWebPush:
		return true
	default:
		return false
	}
}

// PushDestination is one registered client surface of an account.
// Token is the FCM registration token or the web push endpoint URL and is unique.
type PushDestination struct {
	ID        uuid.UUID    `json:"id"`
	AccountID uuid.UUID    `json:"account_id"`
	Platform  PushPlatform `json:"platform"`
	Token     string       `json:"token"`
	P256dhKey string       `json:"p256dh_key,omitempty"` // web push only
	AuthKey   string       `json:"auth_key,omitempty"`   // web push only
	CreatedAt time.Time    `json:"created_at"`
}

// DeliveryOutcome is what a push transport reports for one attempt.
type DeliveryOutcome int

const (
	// DeliveryDelivered means the transport accepted the message.
	DeliveryDelivered DeliveryOutcome = iota
	// DeliveryPermanentlyInvalid means the destination will never accept messages again.
	DeliveryPermanentlyInvalid
	// DeliveryTransientFailure means the attempt failed but the destination may still be valid.
	DeliveryTransientFailure
)

// String returns a label suitable for logs and metrics.
func (o DeliveryOutcome) String() string {
	switch o {
	case DeliveryDelivered:
		return "delivered"
	case DeliveryPermanentlyInvalid:
		return "permanently_invalid"
	case DeliveryTransientFailure:
		return "transient_failure"
	default:
		return "unknown"
	}
}
