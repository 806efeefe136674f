// Package usage holds the pure algorithms over a spool meter's usage history:
// session segmentation, depletion prediction and threshold evaluation.
package usage

import (
	"cmp"
	"slices"
	"time"

	"spoolmeter/internal/domain/entity"
)

// DefaultSessionMargin is the fraction margin used when none is configured.
const DefaultSessionMargin = 0.10

const day = 24 * time.Hour

// SortEntries orders entries by timestamp, keeping insertion order for ties.
func SortEntries(entries []*entity.UsageLogEntry) {
	slices.SortStableFunc(entries, func(a, b *entity.UsageLogEntry) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}

		return cmp.Compare(a.Sequence, b.Sequence)
	})
}

// Segment partitions an ascending log into usage sessions in a single pass.
//
// A reading of exactly 0 joins the current session and closes it. Otherwise a new
// session starts when the reading is exactly 1 and the current session is not empty,
// or when fraction+margin > previous fraction. The second rule fires on increases and
// on any decrease smaller than margin, so slow steady depletion fragments into many
// short sessions.
func Segment(entries []*entity.UsageLogEntry, margin float64) []entity.UsageSession {
	sessions := make([]entity.UsageSession, 0)
	var current []*entity.UsageLogEntry

	flush := func() {
		if len(current) == 0 {
			return
		}
		sessions = append(sessions, newSession(current))
		current = nil
	}

	for idx, entry := range entries {
		fraction := entry.RemainingFraction

		if fraction == 0 {
			current = append(current, entry)
			flush()

			continue
		}

		refilled := fraction == 1 && len(current) > 0
		notDropped := idx > 0 && fraction+margin > entries[idx-1].RemainingFraction
		if refilled || notDropped {
			flush()
		}

		current = append(current, entry)
	}
	flush()

	return sessions
}

func newSession(entries []*entity.UsageLogEntry) entity.UsageSession {
	start := entries[0].Timestamp
	points := make([]entity.SessionPoint, len(entries))
	for idx, entry := range entries {
		points[idx] = entity.SessionPoint{
			DayOffset:         wholeDays(entry.Timestamp.Sub(start)),
			RemainingFraction: entry.RemainingFraction,
		}
	}

	return entity.UsageSession{
		StartTime: start,
		Entries:   entries,
		Points:    points,
	}
}

// wholeDays truncates toward zero.
func wholeDays(d time.Duration) int {
	return int(d / day)
}
