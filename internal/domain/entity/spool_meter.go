// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// BatteryStatus is the coarse battery level reported by a spool meter, ordered from Full to Dead.
type BatteryStatus uint8

const (
	// BatteryFull indicates a fully charged battery.
	BatteryFull BatteryStatus = iota
	// BatteryHigh indicates a mostly charged battery.
	BatteryHigh
	// BatteryHalf indicates a half charged battery.
	BatteryHalf
	// BatteryLow indicates the battery needs charging soon.
	BatteryLow
	// BatteryDead indicates the battery is exhausted.
	BatteryDead
)

var batteryStatusNames = [...]string{"Full", "High", "Half", "Low", "Dead"}

// ErrInvalidBatteryStatus is returned when a battery status cannot be decoded.
var ErrInvalidBatteryStatus = errors.New("invalid battery status")

// String returns the name of the BatteryStatus.
func (s BatteryStatus) String() string {
	if !s.IsValid() {
		return "BatteryStatus(" + strconv.Itoa(int(s)) + ")"
	}

	return batteryStatusNames[s]
}

// IsValid checks if the BatteryStatus is a known value.
func (s BatteryStatus) IsValid() bool {
	return int(s) < len(batteryStatusNames)
}

// MarshalText encodes the status by name.
func (s BatteryStatus) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, ErrInvalidBatteryStatus
	}

	return []byte(s.String()), nil
}

// UnmarshalText accepts the same forms as ParseBatteryStatus.
func (s *BatteryStatus) UnmarshalText(text []byte) error {
	parsed, ok := ParseBatteryStatus(string(text))
	if !ok {
		return ErrInvalidBatteryStatus
	}
	*s = parsed

	return nil
}

// ParseBatteryStatus accepts a status name (case-insensitive) or its ordinal.
func ParseBatteryStatus(raw string) (BatteryStatus, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(raw); err == nil {
		status := BatteryStatus(n)
		if n < 0 || !status.IsValid() {
			return 0, false
		}

		return status, true
	}

	for idx, name := range batteryStatusNames {
		if strings.EqualFold(name, raw) {
			return BatteryStatus(idx), true
		}
	}

	return 0, false
}

// SpoolMeter is the persisted state of one physical spool meter.
type SpoolMeter struct {
	ID              string        `json:"id"`               // Device identifier printed on the unit.
	Name            string        `json:"name"`             // Display name chosen by the owner.
	SecretHash      string        `json:"-"`                // bcrypt hash of the device secret.
	RemainingAmount float64       `json:"remaining_amount"` // Current amount, same unit as OriginalAmount.
	OriginalAmount  float64       `json:"original_amount"`  // Amount on a full spool.
	BatteryStatus   BatteryStatus `json:"battery_status"`
	MaterialTypeID  uuid.UUID     `json:"material_type_id"`
	Color           string        `json:"color"` // "#RRGGBB"
	UpdatedAt       time.Time     `json:"updated_at"`
}

// RemainingFraction returns RemainingAmount / OriginalAmount clamped to [0,1].
// A meter without an original amount reports 0.
func (m *SpoolMeter) RemainingFraction() float64 {
	return RemainingFraction(m.RemainingAmount, m.OriginalAmount)
}

// ClampRemaining keeps an accepted amount within [0, original].
func ClampRemaining(amount, original float64) float64 {
	if amount < 0 {
		return 0
	}
	if original >= 0 && amount > original {
		return original
	}

	return amount
}

// RemainingFraction computes remaining / original clamped to [0,1].
func RemainingFraction(remaining, original float64) float64 {
	if original <= 0 {
		return 0
	}

	fraction := remaining / original
	switch {
	case fraction < 0:
		return 0
	case fraction > 1:
		return 1
	default:
		return fraction
	}
}
