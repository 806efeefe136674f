package usage

import (
	"math/rand/v2"
	"testing"
	"time"

	"spoolmeter/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

type reading struct {
	offset   time.Duration
	fraction float64
}

func buildLog(readings ...reading) []*entity.UsageLogEntry {
	entries := make([]*entity.UsageLogEntry, len(readings))
	for idx, r := range readings {
		entries[idx] = &entity.UsageLogEntry{
			ID:                uuid.New(),
			SpoolMeterID:      "meter-1",
			Timestamp:         baseTime.Add(r.offset),
			RemainingFraction: r.fraction,
			Sequence:          int64(idx + 1),
		}
	}

	return entries
}

func days(n float64) time.Duration {
	return time.Duration(n * float64(day))
}

func flatten(sessions []entity.UsageSession) []*entity.UsageLogEntry {
	var out []*entity.UsageLogEntry
	for _, s := range sessions {
		out = append(out, s.Entries...)
	}

	return out
}

func TestSegment_EmptyLog(t *testing.T) {
	sessions := Segment(nil, DefaultSessionMargin)
	assert.Empty(t, sessions)
}

func TestSegment_SlowDecreaseFragmentsIntoSingleEntrySessions(t *testing.T) {
	readings := make([]reading, 0, 40)
	for i := range 40 {
		readings = append(readings, reading{offset: days(float64(i)), fraction: 0.95 - 0.01*float64(i)})
	}
	entries := buildLog(readings...)

	sessions := Segment(entries, 0.10)

	require.Len(t, sessions, len(entries))
	for idx, s := range sessions {
		require.Len(t, s.Entries, 1)
		assert.Same(t, entries[idx], s.Entries[0])
		assert.Equal(t, []entity.SessionPoint{{DayOffset: 0, RemainingFraction: entries[idx].RemainingFraction}}, s.Points)
	}

	// Every pooled point sits at day 0, so no line can be fitted.
	assert.False(t, Predict(sessions).Determinable)
}

func TestSegment_DropLargerThanMarginStaysInSession(t *testing.T) {
	entries := buildLog(
		reading{0, 1.0},
		reading{days(5), 0.5},
		reading{days(10), 0.0},
	)

	sessions := Segment(entries, DefaultSessionMargin)

	require.Len(t, sessions, 1)
	assert.Equal(t, baseTime, sessions[0].StartTime)
	assert.Equal(t, []entity.SessionPoint{
		{DayOffset: 0, RemainingFraction: 1.0},
		{DayOffset: 5, RemainingFraction: 0.5},
		{DayOffset: 10, RemainingFraction: 0.0},
	}, sessions[0].Points)
}

func TestSegment_ZeroClosesSessionAndRefillStartsNext(t *testing.T) {
	entries := buildLog(
		reading{0, 1.0},
		reading{days(5), 0.5},
		reading{days(10), 0.0},
		reading{days(11), 1.0},
		reading{days(15), 0.6},
	)

	sessions := Segment(entries, DefaultSessionMargin)

	require.Len(t, sessions, 2)
	assert.Len(t, sessions[0].Entries, 3)
	assert.Equal(t, baseTime.Add(days(11)), sessions[1].StartTime)
	assert.Equal(t, []entity.SessionPoint{
		{DayOffset: 0, RemainingFraction: 1.0},
		{DayOffset: 4, RemainingFraction: 0.6},
	}, sessions[1].Points)
}

func TestSegment_FullReadingSplitsNonEmptySession(t *testing.T) {
	entries := buildLog(
		reading{0, 0.5},
		reading{days(1), 1.0},
	)

	sessions := Segment(entries, DefaultSessionMargin)

	require.Len(t, sessions, 2)
	assert.Same(t, entries[1], sessions[1].Entries[0])
}

func TestSegment_ZeroAsFirstEntryIsItsOwnSession(t *testing.T) {
	entries := buildLog(
		reading{0, 0.0},
		reading{days(1), 0.8},
	)

	sessions := Segment(entries, DefaultSessionMargin)

	require.Len(t, sessions, 2)
	assert.Len(t, sessions[0].Entries, 1)
	assert.Len(t, sessions[1].Entries, 1)
}

func TestSegment_DayOffsetsTruncate(t *testing.T) {
	entries := buildLog(
		reading{0, 1.0},
		reading{36 * time.Hour, 0.7},
		reading{days(3) - time.Minute, 0.4},
	)

	sessions := Segment(entries, DefaultSessionMargin)

	require.Len(t, sessions, 1)
	assert.Equal(t, 0, sessions[0].Points[0].DayOffset)
	assert.Equal(t, 1, sessions[0].Points[1].DayOffset)
	assert.Equal(t, 2, sessions[0].Points[2].DayOffset)
}

func TestSegment_IsTotalOrderedPartition(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	choices := []float64{0, 1}

	for trial := range 200 {
		n := 1 + rng.IntN(60)
		readings := make([]reading, n)
		for i := range n {
			fraction := rng.Float64()
			if rng.IntN(8) == 0 {
				fraction = choices[rng.IntN(len(choices))]
			}
			readings[i] = reading{offset: time.Duration(i) * 7 * time.Hour, fraction: fraction}
		}
		entries := buildLog(readings...)
		margin := rng.Float64() * 0.3

		sessions := Segment(entries, margin)

		total := 0
		for _, s := range sessions {
			require.NotEmpty(t, s.Entries, "trial %d", trial)
			require.Len(t, s.Points, len(s.Entries), "trial %d", trial)
			assert.Equal(t, s.Entries[0].Timestamp, s.StartTime)
			total += len(s.Entries)
		}
		require.Equal(t, len(entries), total, "trial %d", trial)
		require.Equal(t, entries, flatten(sessions), "trial %d", trial)
	}
}

func TestSortEntries_TiesKeepInsertionOrder(t *testing.T) {
	same := baseTime.Add(time.Hour)
	entries := []*entity.UsageLogEntry{
		{Timestamp: same, Sequence: 3},
		{Timestamp: baseTime, Sequence: 5},
		{Timestamp: same, Sequence: 2},
	}

	SortEntries(entries)

	assert.Equal(t, int64(5), entries[0].Sequence)
	assert.Equal(t, int64(2), entries[1].Sequence)
	assert.Equal(t, int64(3), entries[2].Sequence)
}
