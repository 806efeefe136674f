package entity

import (
	"time"

	"github.com/google/uuid"
)

// UsageLogEntry is one immutable remaining-fraction reading.
type UsageLogEntry struct {
	ID                uuid.UUID `json:"id"`
	SpoolMeterID      string    `json:"spool_meter_id"`
	Timestamp         time.Time `json:"timestamp"`
	RemainingFraction float64   `json:"remaining_fraction"` // remaining / original at write time, in [0,1].
	Sequence          int64     `json:"-"`                  // Insertion order, breaks timestamp ties.
}

// SessionPoint is one reading positioned relative to the start of its session.
type SessionPoint struct {
	DayOffset         int     `json:"day_offset"` // Whole days since the session's first entry.
	RemainingFraction float64 `json:"remaining_fraction"`
}

// UsageSession is a contiguous run of entries belonging to one fill of a spool.
// It is derived on demand and never persisted.
type UsageSession struct {
	StartTime time.Time        `json:"start_time"`
	Entries   []*UsageLogEntry `json:"-"`
	Points    []SessionPoint   `json:"points"`
}

// Prediction is the projected run-out of a spool meter.
// Determinable is false when the history is too sparse or flat to fit a line.
type Prediction struct {
	SpoolMeterID  string    `json:"spool_meter_id"`
	Determinable  bool      `json:"determinable"`
	RunOutDate    time.Time `json:"predicted_run_out_date,omitzero"`
	PredictedDays float64   `json:"predicted_days"` // Days from the last session start to a zero fraction.
	Intercept     float64   `json:"intercept"`
	Slope         float64   `json:"slope"`
	SessionCount  int       `json:"session_count"`
	PointCount    int       `json:"point_count"`
}
